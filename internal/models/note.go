package models

import "time"

// Note lives inside its mentee's partition and is fetched together with the
// mentee by a single range query.
type Note struct {
	ID        string     `json:"id"`
	MenteeID  string     `json:"menteeId"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
