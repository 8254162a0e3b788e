package entity

import (
	"time"
)

// Project is a portfolio entry. Projects carry no author reference; any
// authenticated account may manage them.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	RepoURL     string    `json:"repoUrl"`
	LiveURL     string    `json:"liveUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
