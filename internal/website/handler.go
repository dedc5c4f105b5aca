package website

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// POST /api/websites
func (h *Handler) Connect(c *gin.Context) {
	var req struct {
		URL             string `json:"url"`
		SiteURL         string `json:"siteUrl"`
		PermissionLevel string `json:"permissionLevel"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.URL == "" || req.SiteURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url and siteUrl required"})
		return
	}

	userID := c.GetString("userID")

	website, err := h.service.Connect(
		c.Request.Context(),
		userID,
		req.URL,
		req.SiteURL,
		req.PermissionLevel,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, website)
}

// GET /api/websites
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	websites, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, websites)
}
