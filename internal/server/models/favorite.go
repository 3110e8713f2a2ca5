package models

import "time"

// Favorite is a categorized link owned by a single user. The owner is fixed
// at creation; favorites are append-only for now.
type Favorite struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Platform    string    `json:"platform"`
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
