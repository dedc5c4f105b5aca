package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/analyze/search-data
func (h *Handler) AnalyzeSearchData(c *gin.Context) {
	var req struct {
		Data any `json:"data"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided for analysis"})
		return
	}

	result, err := h.service.AnalyzeSearchData(c.Request.Context(), req.Data)
	if err != nil {
		if errors.Is(err, ErrParse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not parse analysis response"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /api/analyze/query-recommendations
func (h *Handler) QueryRecommendations(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
		Data  any    `json:"data"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" || req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query and data required"})
		return
	}

	recommendations, err := h.service.QueryRecommendations(c.Request.Context(), req.Query, req.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// POST /api/analyze/performance-trends
func (h *Handler) PerformanceTrends(c *gin.Context) {
	var req struct {
		Data any `json:"data"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no data provided for analysis"})
		return
	}

	summary, err := h.service.SummarizeTrends(c.Request.Context(), req.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
