package handlers

import (
	"net/http"

	"capi-onboarding-backend/internal/catalog"
	apperrors "capi-onboarding-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only wizard catalog and documentation tree
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListPlatforms handles GET /api/catalog/platforms
// @Summary List platforms
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]catalog.Platform "Platforms"
// @Router /catalog/platforms [get]
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": h.catalog.Platforms()})
}

// ListPhases handles GET /api/catalog/phases
// @Summary List wizard phases
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]catalog.Phase "Phases"
// @Router /catalog/phases [get]
func (h *CatalogHandler) ListPhases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phases": h.catalog.Phases()})
}

// ListSteps handles GET /api/catalog/steps
// @Summary List wizard steps
// @Description Without a platform every step is returned; with one, the steps of that platform's wizard ordered by phase
// @Tags catalog
// @Produce json
// @Param platform query string false "Platform ID"
// @Success 200 {object} map[string][]catalog.Step "Steps"
// @Failure 404 {object} ErrorResponse "Unknown platform"
// @Router /catalog/steps [get]
func (h *CatalogHandler) ListSteps(c *gin.Context) {
	platform := c.Query("platform")
	if platform == "" {
		c.JSON(http.StatusOK, gin.H{"steps": h.catalog.Steps()})
		return
	}
	if _, ok := h.catalog.Platform(platform); !ok {
		respondError(c, apperrors.ErrPlatformNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": h.catalog.WizardSteps(platform)})
}

// DocStructure handles GET /api/docs
// @Summary Get documentation structure
// @Tags docs
// @Produce json
// @Success 200 {object} map[string]catalog.DocStructure "Documentation tree"
// @Router /docs [get]
func (h *CatalogHandler) DocStructure(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"structure": h.catalog.DocStructure()})
}

// ChecklistContent handles GET /api/docs/content/:stepId
// @Summary Get checklist instructions for a step
// @Description Long-form instructions per checklist item; empty when the step has none
// @Tags docs
// @Produce json
// @Param stepId path string true "Step ID"
// @Success 200 {object} map[string][]catalog.ChecklistContent "Checklist content"
// @Router /docs/content/{stepId} [get]
func (h *CatalogHandler) ChecklistContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.catalog.ChecklistContent(c.Param("stepId"))})
}
