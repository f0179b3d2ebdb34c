package models

import (
	"time"
)

// Project represents a portfolio project entry
type Project struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Period      string    `json:"period" db:"period"`
	Description string    `json:"description" db:"description"`
	Skills      string    `json:"skills" db:"skills"`
	Role        string    `json:"role" db:"role"`
	Review      string    `json:"review" db:"review"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	ProjectURL  string    `json:"project_url" db:"project_url"`
	GithubURL   string    `json:"github_url" db:"github_url"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	ViewCount   int       `json:"view_count" db:"view_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateProjectRequest is the body of POST /api/projects
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Role        string `json:"role"`
	Review      string `json:"review"`
	ImageURL    string `json:"image_url"`
	ProjectURL  string `json:"project_url"`
	GithubURL   string `json:"github_url"`
	IsFeatured  bool   `json:"is_featured"`
}
