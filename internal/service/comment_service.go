package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/repository"
	"github.com/kgyujin/ksnu-portfolio/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, log zerolog.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// hashPassword returns the hex SHA-256 digest of a password. Unsalted,
// matching the stored format of the existing comment records.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// List returns the public projections of active comments, newest first,
// capped at MaxCommentListSize.
func (s *commentService) List(ctx context.Context) ([]*models.CommentResponse, error) {
	comments, err := s.repo.ListActive(ctx, models.MaxCommentListSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, c.PublicView())
	}
	return responses, nil
}

// Create validates, sanitizes and stores a new comment.
// Validation order: name, message, password.
func (s *commentService) Create(ctx context.Context, req *models.CreateCommentRequest, ipAddress string) (*models.CommentResponse, error) {
	if err := validation.ValidateTextField("name", req.Name, models.MinCommentNameLength, models.MaxCommentNameLength); err != nil {
		return nil, err
	}
	if err := validation.ValidateTextField("message", req.Message, models.MinCommentMessageLength, models.MaxCommentMessageLength); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		ID:           uuid.New().String(),
		Name:         validation.Sanitize(req.Name),
		Message:      validation.Sanitize(req.Message),
		PasswordHash: hashPassword(req.Password),
		IPAddress:    ipAddress,
		IsApproved:   true,
		IsDeleted:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", comment.ID).Msg("Comment created")
	return comment.PublicView(), nil
}

// Update replaces the message of an existing comment after checking the
// password against the stored hash.
func (s *commentService) Update(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.CommentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}

	if hashPassword(req.Password) != comment.PasswordHash {
		return nil, ErrInvalidPassword
	}

	if err := validation.ValidateTextField("message", req.Message, models.MinCommentMessageLength, models.MaxCommentMessageLength); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateMessage(ctx, id, validation.Sanitize(req.Message))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Lost a race with a concurrent delete
		return nil, ErrNotFound
	}

	s.log.Info().Str("comment_id", id).Msg("Comment updated")
	return updated.PublicView(), nil
}

// Delete soft-deletes a comment after checking the password.
// Deleted comments never reappear in list, count or lookup.
func (s *commentService) Delete(ctx context.Context, id, password string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	comment, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if hashPassword(password) != comment.PasswordHash {
		return ErrInvalidPassword
	}

	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}

// Count returns the number of active comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}
