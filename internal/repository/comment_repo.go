package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/database"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, name, message, password_hash, ip_address, is_approved, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Name, comment.Message, comment.PasswordHash,
		comment.IPAddress, comment.IsApproved, comment.IsDeleted,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// ListActive returns approved, non-deleted comments newest first
func (r *commentRepo) ListActive(ctx context.Context, limit int) ([]*models.Comment, error) {
	query := `
		SELECT id, name, message, password_hash, ip_address, is_approved, is_deleted, created_at, updated_at
		FROM comments
		WHERE is_approved = TRUE AND is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.ID, &c.Name, &c.Message, &c.PasswordHash, &c.IPAddress,
			&c.IsApproved, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}

// GetActiveByID retrieves a non-deleted, approved comment by ID.
// Returns nil without error when no such comment exists.
func (r *commentRepo) GetActiveByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, name, message, password_hash, ip_address, is_approved, is_deleted, created_at, updated_at
		FROM comments
		WHERE id = $1 AND is_approved = TRUE AND is_deleted = FALSE
	`
	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Message, &c.PasswordHash, &c.IPAddress,
		&c.IsApproved, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// UpdateMessage replaces the message of a non-deleted comment and refreshes
// updated_at. The is_deleted guard makes a concurrent delete lose cleanly:
// zero rows affected is reported as nil, nil and the caller maps it to
// not-found.
func (r *commentRepo) UpdateMessage(ctx context.Context, id, message string) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET message = $2, updated_at = $3
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING id, name, message, password_hash, ip_address, is_approved, is_deleted, created_at, updated_at
	`
	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, id, message, time.Now()).Scan(
		&c.ID, &c.Name, &c.Message, &c.PasswordHash, &c.IPAddress,
		&c.IsApproved, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// SoftDelete marks a comment deleted and refreshes updated_at.
// Returns false when the comment does not exist or was already deleted.
func (r *commentRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE comments
		SET is_deleted = TRUE, updated_at = $2
		WHERE id = $1 AND is_deleted = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// CountActive returns the number of approved, non-deleted comments
func (r *commentRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE is_approved = TRUE AND is_deleted = FALSE",
	).Scan(&count)
	return count, err
}
