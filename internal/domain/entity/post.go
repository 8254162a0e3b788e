package entity

import (
	"time"
)

// BlogPost is an owned resource: AuthorID is set once at creation from the
// authenticated actor and never changes afterwards.
type BlogPost struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
