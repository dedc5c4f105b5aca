package searchconsole

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenProvider resolves the Google access token stored for a user.
type TokenProvider interface {
	GoogleAccessToken(ctx context.Context, userID string) (string, error)
}

// SnapshotStore caches fetched analytics per website and date range.
type SnapshotStore interface {
	Save(ctx context.Context, websiteID string, data *SearchAnalytics) error
	Find(ctx context.Context, websiteID, startDate, endDate string) (*SearchAnalytics, error)
}

type Handler struct {
	client    *Client
	tokens    TokenProvider
	snapshots SnapshotStore
}

func NewHandler(client *Client, tokens TokenProvider, snapshots SnapshotStore) *Handler {
	return &Handler{client: client, tokens: tokens, snapshots: snapshots}
}

// GET /api/search-console/sites
func (h *Handler) Sites(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	sites, err := h.client.Sites(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// GET /api/search-console/analytics
func (h *Handler) Analytics(c *gin.Context) {
	siteURL, startDate, endDate, ok := h.rangeParams(c)
	if !ok {
		return
	}

	dimensions := []string{"query"}
	if raw := c.Query("dimensions"); raw != "" {
		dimensions = strings.Split(raw, ",")
	}

	websiteID := c.Query("websiteId")

	// Same-range snapshot short-circuits the upstream call.
	if websiteID != "" {
		if cached, err := h.snapshots.Find(c.Request.Context(), websiteID, startDate, endDate); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	data, err := h.client.Query(c.Request.Context(), token, siteURL, startDate, endDate, dimensions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if websiteID != "" {
		if err := h.snapshots.Save(c.Request.Context(), websiteID, data); err != nil {
			log.Printf("[SEARCHCONSOLE] snapshot save failed for website %s: %v", websiteID, err)
		}
	}

	c.JSON(http.StatusOK, data)
}

// GET /api/search-console/summary
// One shared aggregation for every caller; the UI must not re-derive it.
func (h *Handler) Summary(c *gin.Context) {
	siteURL, startDate, endDate, ok := h.rangeParams(c)
	if !ok {
		return
	}

	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	data, err := h.client.Query(c.Request.Context(), token, siteURL, startDate, endDate, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, Aggregate(data.Rows))
}

// GET /api/search-console/performance-by-date
func (h *Handler) PerformanceByDate(c *gin.Context) {
	h.performance(c, h.client.PerformanceByDate)
}

// GET /api/search-console/performance-by-device
func (h *Handler) PerformanceByDevice(c *gin.Context) {
	h.performance(c, h.client.PerformanceByDevice)
}

// GET /api/search-console/performance-by-page
func (h *Handler) PerformanceByPage(c *gin.Context) {
	h.performance(c, h.client.PerformanceByPage)
}

// GET /api/search-console/performance-by-country
func (h *Handler) PerformanceByCountry(c *gin.Context) {
	h.performance(c, h.client.PerformanceByCountry)
}

type performanceFetch func(ctx context.Context, accessToken, siteURL, startDate, endDate string) (*SearchAnalytics, error)

func (h *Handler) performance(c *gin.Context, fetch performanceFetch) {
	siteURL, startDate, endDate, ok := h.rangeParams(c)
	if !ok {
		return
	}

	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	data, err := fetch(c.Request.Context(), token, siteURL, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) rangeParams(c *gin.Context) (siteURL, startDate, endDate string, ok bool) {
	siteURL = c.Query("siteUrl")
	startDate = c.Query("startDate")
	endDate = c.Query("endDate")

	if siteURL == "" || startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteUrl, startDate and endDate required"})
		return "", "", "", false
	}
	return siteURL, startDate, endDate, true
}

func (h *Handler) accessToken(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")

	token, err := h.tokens.GoogleAccessToken(c.Request.Context(), userID)
	if err != nil || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google Search Console not connected"})
		return "", false
	}
	return token, true
}
