package searchdata

import (
	"time"

	"github.com/arnikanord/gsc-for-seo-new/internal/searchconsole"
)

// Snapshot is one fetched SearchAnalytics payload cached for a website
// and date range.
type Snapshot struct {
	ID        string                        `json:"id"`
	WebsiteID string                        `json:"website_id"`
	Data      searchconsole.SearchAnalytics `json:"data"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	CreatedAt time.Time                     `json:"created_at"`
}
