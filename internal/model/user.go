package model

import "time"

const (
	AuthorityUser = "ROLE_USER"
)

// DefaultImageURL is assigned to every newly registered account.
const DefaultImageURL = "http://speakeasyy.com.s3-website-us-west-1.amazonaws.com/images/default_image.jpg"

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	FirstName    *string   `json:"firstName,omitempty"`
	LastName     *string   `json:"lastName,omitempty"`
	ImageURL     string    `json:"imageUrl"`
	APIToken     string    `json:"-"` // Bearer credential, never serialized
	Authority    string    `json:"authority"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInfo is the public profile projection returned by /user-info
type UserInfo struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	ImageURL  string  `json:"imageUrl"`
}
