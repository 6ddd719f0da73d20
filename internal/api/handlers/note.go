package handlers

import (
	"net/http"

	"capi-onboarding-backend/internal/auth"
	"capi-onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles HTTP requests for step and checklist item notes
type NoteHandler struct {
	service service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{service: service}
}

// DeleteNoteResponse acknowledges a cleared note
type DeleteNoteResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted bool `json:"deleted" example:"true"`
}

func queryItemIndex(c *gin.Context) (*int, bool) {
	idx, ok := optionalItemIndex(c)
	if !ok {
		badRequest(c, "itemIndex: must be a non-negative integer")
	}
	return idx, ok
}

// GetNotes handles GET /api/notes/:clientId/:platform/:stepId
// @Summary Get notes
// @Description Get the step-level note, or the note of one checklist item when itemIndex is given
// @Tags notes
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param itemIndex query int false "Checklist item index"
// @Success 200 {object} map[string][]models.Note "Notes"
// @Failure 400 {object} ErrorResponse "Invalid item index"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes/{clientId}/{platform}/{stepId} [get]
func (h *NoteHandler) GetNotes(c *gin.Context) {
	idx, ok := queryItemIndex(c)
	if !ok {
		return
	}

	notes, err := h.service.GetNotes(c.Request.Context(), c.Param("clientId"), c.Param("platform"), c.Param("stepId"), idx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// SaveNote handles POST /api/notes/:clientId/:platform/:stepId
// @Summary Save a note
// @Description Create or overwrite a note; an empty note clears it
// @Tags notes
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param note body service.SaveNoteRequest true "Note text and optional item index"
// @Success 200 {object} map[string]models.Note "Saved note"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes/{clientId}/{platform}/{stepId} [post]
func (h *NoteHandler) SaveNote(c *gin.Context) {
	var req service.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	req.ClientID = c.Param("clientId")
	req.Platform = c.Param("platform")
	req.StepID = c.Param("stepId")
	if req.UpdatedBy == "" {
		req.UpdatedBy = auth.GetUserEmail(c)
	}

	note, err := h.service.SaveNote(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote handles DELETE /api/notes/:clientId/:platform/:stepId
// @Summary Clear a note
// @Description Clear a note by saving it empty, or remove the row when purge is set
// @Tags notes
// @Produce json
// @Param clientId path string true "Client ID"
// @Param platform path string true "Platform ID, or core"
// @Param stepId path string true "Step ID"
// @Param itemIndex query int false "Checklist item index"
// @Param purge query bool false "Remove the note row instead of clearing it"
// @Success 200 {object} DeleteNoteResponse "Note cleared"
// @Failure 400 {object} ErrorResponse "Invalid item index"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes/{clientId}/{platform}/{stepId} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	idx, ok := queryItemIndex(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteNote(c.Request.Context(), &service.DeleteNoteRequest{
		ClientID:  c.Param("clientId"),
		Platform:  c.Param("platform"),
		StepID:    c.Param("stepId"),
		ItemIndex: idx,
		UpdatedBy: auth.GetUserEmail(c),
		Purge:     c.Query("purge") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteNoteResponse{Success: true, Deleted: deleted})
}
