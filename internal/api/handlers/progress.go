package handlers

import (
	"net/http"

	"capi-onboarding-backend/internal/auth"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler handles HTTP requests for step and checklist item progress
type ProgressHandler struct {
	service service.ProgressServiceInterface
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service service.ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// CompletionRequest is the optional body of a completion
type CompletionRequest struct {
	CompletedBy string `json:"completedBy,omitempty" example:"jane@capi.example"`
}

// completedBy prefers the body, then the authenticated user
func completedBy(c *gin.Context) (string, bool) {
	var req CompletionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body: "+err.Error())
			return "", false
		}
	}
	if req.CompletedBy != "" {
		return req.CompletedBy, true
	}
	return auth.GetUserEmail(c), true
}

func pathItemIndex(c *gin.Context) (int, bool) {
	idx, ok := parseItemIndex(c.Param("itemIndex"))
	if !ok {
		badRequest(c, "itemIndex: must be a non-negative integer")
	}
	return idx, ok
}

// GetClientProgress handles GET /api/progress/:clientId
// @Summary Get client progress
// @Description List every completed step of a client across all platforms
// @Tags progress
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} map[string][]models.StepProgress "Completed steps"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId} [get]
func (h *ProgressHandler) GetClientProgress(c *gin.Context) {
	progress, err := h.service.GetClientProgress(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// GetPlatformProgress handles GET /api/progress/:clientId/:platform
// @Summary Get platform progress
// @Description List the completed steps recorded under one platform instance
// @Tags progress
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Success 200 {object} map[string][]models.StepProgress "Completed steps"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform} [get]
func (h *ProgressHandler) GetPlatformProgress(c *gin.Context) {
	progress, err := h.service.GetPlatformProgress(c.Request.Context(), c.Param("clientId"), c.Param("platform"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// MarkStepComplete handles POST /api/progress/:clientId/:platform/:stepId
// @Summary Mark a step complete
// @Description Record a step as completed and move the platform and client to in_progress when they have not started
// @Tags progress
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param body body CompletionRequest false "Who completed the step"
// @Success 200 {object} map[string]models.StepProgress "Completed step"
// @Failure 400 {object} ErrorResponse "Step not recordable under this platform"
// @Failure 404 {object} ErrorResponse "Unknown step"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform}/{stepId} [post]
func (h *ProgressHandler) MarkStepComplete(c *gin.Context) {
	by, ok := completedBy(c)
	if !ok {
		return
	}

	step, err := h.service.MarkStepComplete(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"), by)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": step})
}

// UnmarkStep handles DELETE /api/progress/:clientId/:platform/:stepId
// @Summary Unmark a step
// @Description Delete the completion record of a step; platform and client status are left unchanged
// @Tags progress
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Success 200 {object} SuccessResponse "Step unmarked"
// @Failure 404 {object} ErrorResponse "Step was not completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform}/{stepId} [delete]
func (h *ProgressHandler) UnmarkStep(c *gin.Context) {
	removed, err := h.service.UnmarkStep(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondError(c, apperrors.ErrStepProgressNotFound)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetChecklistProgress handles GET /api/progress/:clientId/:platform/:stepId/items
// @Summary Get checklist progress
// @Description List the completed checklist items of a step, ordered by item index
// @Tags progress
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Success 200 {object} map[string][]models.ChecklistProgress "Completed items"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform}/{stepId}/items [get]
func (h *ProgressHandler) GetChecklistProgress(c *gin.Context) {
	items, err := h.service.GetChecklistProgress(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// MarkChecklistItemComplete handles POST /api/progress/:clientId/:platform/:stepId/items/:itemIndex
// @Summary Mark a checklist item complete
// @Tags progress
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param itemIndex path int true "Checklist item index"
// @Param body body CompletionRequest false "Who completed the item"
// @Success 200 {object} map[string]models.ChecklistProgress "Completed item"
// @Failure 400 {object} ErrorResponse "Invalid item index"
// @Failure 404 {object} ErrorResponse "Unknown step or item"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform}/{stepId}/items/{itemIndex} [post]
func (h *ProgressHandler) MarkChecklistItemComplete(c *gin.Context) {
	idx, ok := pathItemIndex(c)
	if !ok {
		return
	}
	by, ok := completedBy(c)
	if !ok {
		return
	}

	item, err := h.service.MarkChecklistItemComplete(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"), idx, by)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UnmarkChecklistItem handles DELETE /api/progress/:clientId/:platform/:stepId/items/:itemIndex
// @Summary Unmark a checklist item
// @Tags progress
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param itemIndex path int true "Checklist item index"
// @Success 200 {object} SuccessResponse "Item unmarked"
// @Failure 400 {object} ErrorResponse "Invalid item index"
// @Failure 404 {object} ErrorResponse "Item was not completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /progress/{clientId}/{platform}/{stepId}/items/{itemIndex} [delete]
func (h *ProgressHandler) UnmarkChecklistItem(c *gin.Context) {
	idx, ok := pathItemIndex(c)
	if !ok {
		return
	}

	removed, err := h.service.UnmarkChecklistItem(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondError(c, apperrors.ErrChecklistProgressNotFound)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
