package models

import "time"

// Post belongs to exactly one user via UserID. Posts are created by an
// external collaborator; this service only reads them.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
