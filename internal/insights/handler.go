package insights

import (
	"errors"
	"net/http"

	"github.com/arnikanord/gsc-for-seo-new/internal/analysis"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/insights
// Replaces the full insight set for a website.
func (h *Handler) Replace(c *gin.Context) {
	var req struct {
		WebsiteID string                       `json:"websiteId"`
		Insights  []analysis.InsightSuggestion `json:"insights"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.WebsiteID == "" || req.Insights == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websiteId and insights required"})
		return
	}

	saved, err := h.service.Replace(c.Request.Context(), req.WebsiteID, req.Insights)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid input",
				"field": validationErr.Field,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// GET /api/insights/:websiteId
func (h *Handler) List(c *gin.Context) {
	websiteID := c.Param("websiteId")
	if websiteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websiteId required"})
		return
	}

	result, err := h.service.List(c.Request.Context(), websiteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
