package entity

import (
	"time"
)

// Comment belongs to exactly one blog post. Comments are create/list only;
// they disappear as a batch when their post is deleted.
type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	Body           string    `json:"body"`
	AuthorID       string    `json:"authorId"`
	AuthorUsername string    `json:"authorUsername,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
