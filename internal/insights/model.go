package insights

import "time"

// Valid insight types.
const (
	TypePositive    = "positive"
	TypeOpportunity = "opportunity"
	TypeInfo        = "info"
)

// Insight is one AI-generated observation attached to a website.
type Insight struct {
	ID          string    `json:"id"`
	WebsiteID   string    `json:"website_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func validType(t string) bool {
	return t == TypePositive || t == TypeOpportunity || t == TypeInfo
}
