package auth

import "time"

// User is the domain entity. Google fields are set once the user has
// connected Search Console.
type User struct {
	ID                 string
	Username           string
	Password           string
	Email              string
	GoogleID           string
	GoogleAccessToken  string
	GoogleRefreshToken string
	CreatedAt          time.Time
}
