package website

import "time"

// Website is a Search Console property connected by a user.
type Website struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	URL             string    `json:"url"`
	SiteURL         string    `json:"site_url"`
	PermissionLevel string    `json:"permission_level"`
	CreatedAt       time.Time `json:"created_at"`
}
