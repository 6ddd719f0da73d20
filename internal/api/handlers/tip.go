package handlers

import (
	"net/http"

	"capi-onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TipHandler serves the onboarding assistant
type TipHandler struct {
	service service.TipServiceInterface
}

// NewTipHandler creates a new tip handler
func NewTipHandler(service service.TipServiceInterface) *TipHandler {
	return &TipHandler{service: service}
}

// NextTip handles POST /api/tips/next
// @Summary Pick the next assistant tip
// @Description Select a tip for the page the user is on, preferring tips not yet seen; tip is null when none applies
// @Tags tips
// @Accept json
// @Produce json
// @Param context body service.TipContext true "Where the user is and which tips were already shown"
// @Success 200 {object} map[string]catalog.Tip "Selected tip"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /tips/next [post]
func (h *TipHandler) NextTip(c *gin.Context) {
	var req service.TipContext
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	tip, err := h.service.SelectTip(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
