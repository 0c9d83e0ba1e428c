package models

import "time"

// User represents a user in the system. Field types align with the store
// schema: INTEGER/BIGINT -> int64, TIMESTAMP -> time.Time.
//
// Department maps to a nullable column, so a missing department serializes as
// JSON null. Posts is populated by the read queries only; the create path
// leaves it nil, which omits the field from the creation response.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	Posts      []Post    `json:"posts,omitempty"`
}
