package models

import (
	"time"
)

// Comment represents a guestbook comment
type Comment struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Message      string    `json:"message" db:"message"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IPAddress    string    `json:"-" db:"ip_address"`
	IsApproved   bool      `json:"is_approved" db:"is_approved"`
	IsDeleted    bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CommentResponse is the public projection of a comment.
// The password hash and IP address never leave the service layer.
type CommentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the body of POST /api/comments
type CreateCommentRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Message  string `json:"message"`
}

// UpdateCommentRequest is the body of PUT /api/comments/:id
type UpdateCommentRequest struct {
	Password string `json:"password"`
	Message  string `json:"message"`
}

// DeleteCommentRequest is the body of DELETE /api/comments/:id
type DeleteCommentRequest struct {
	Password string `json:"password"`
}

// Comment field limits
const (
	MinCommentNameLength    = 2
	MaxCommentNameLength    = 50
	MinCommentMessageLength = 1
	MaxCommentMessageLength = 500
	MinCommentPasswordLen   = 4
	MaxCommentPasswordLen   = 20
)

// MaxCommentListSize caps the number of comments returned by the list endpoint
const MaxCommentListSize = 100

// PublicView returns the response projection of a comment
func (c *Comment) PublicView() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
