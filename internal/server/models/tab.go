package models

import "time"

// Tab is a user-defined category. Keys are unique per user and the number of
// tabs per user is capped (see tabs service).
type Tab struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}
