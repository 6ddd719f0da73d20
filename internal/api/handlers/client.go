package handlers

import (
	"net/http"

	"capi-onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for clients and their platforms
type ClientHandler struct {
	service service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(service service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{service: service}
}

// ListClients handles GET /api/clients
// @Summary List clients
// @Description List every client with its platform count and completed platform count
// @Tags clients
// @Produce json
// @Success 200 {object} map[string][]service.ClientSummary "Clients"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// CreateClient handles POST /api/clients
// @Summary Create a new client
// @Description Create a client; it starts in status not_started
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.CreateClientRequest true "Client data"
// @Success 201 {object} map[string]models.Client "Created client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// GetClient handles GET /api/clients/:id
// @Summary Get client by ID
// @Description Get a client with its platform instances and completed steps
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]service.ClientDetail "Client"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// UpdateClient handles PUT /api/clients/:id
// @Summary Update a client
// @Description Update the provided fields of a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body service.UpdateClientRequest true "Fields to update"
// @Success 200 {object} map[string]models.Client "Updated client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// DeleteClient handles DELETE /api/clients/:id
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} SuccessResponse "Client deleted"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.service.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// AddPlatform handles POST /api/clients/:id/platforms
// @Summary Attach a platform to a client
// @Description Start onboarding a client onto a catalog platform
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param platform body service.AddPlatformRequest true "Platform to attach"
// @Success 201 {object} map[string]models.ClientPlatform "Attached platform"
// @Failure 400 {object} ErrorResponse "Unknown platform"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 409 {object} ErrorResponse "Platform already attached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id}/platforms [post]
func (h *ClientHandler) AddPlatform(c *gin.Context) {
	var req service.AddPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	platform, err := h.service.AddPlatform(c.Request.Context(), c.Param("id"), req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"platform": platform})
}

// RemovePlatform handles DELETE /api/clients/:id/platforms/:platform
// @Summary Detach a platform from a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Param platform path string true "Platform ID"
// @Success 200 {object} SuccessResponse "Platform detached"
// @Failure 404 {object} ErrorResponse "Platform not attached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id}/platforms/{platform} [delete]
func (h *ClientHandler) RemovePlatform(c *gin.Context) {
	if err := h.service.RemovePlatform(c.Request.Context(), c.Param("id"), c.Param("platform")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
