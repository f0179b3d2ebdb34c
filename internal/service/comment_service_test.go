package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kgyujin/ksnu-portfolio/internal/mocks"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/validation"
	"github.com/rs/zerolog"
)

func newTestCommentService() (CommentService, *mocks.MockCommentRepository) {
	repo := mocks.NewMockCommentRepository()
	return newCommentService(repo, zerolog.Nop()), repo
}

func TestCommentService_CreateAndList(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCommentRequest{
		Name:     "Tester",
		Password: "test1234",
		Message:  "hello",
	}, "192.0.2.1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Created comment should have an id")
	}
	if created.Name != "Tester" {
		t.Errorf("Expected name 'Tester', got %q", created.Name)
	}
	if created.Message != "hello" {
		t.Errorf("Expected message 'hello', got %q", created.Message)
	}

	// Password is stored hashed, never verbatim
	stored := repo.Comments[created.ID]
	if stored == nil {
		t.Fatal("Comment not stored")
	}
	if stored.PasswordHash == "test1234" {
		t.Error("Password stored in plaintext")
	}
	if len(stored.PasswordHash) != 64 {
		t.Errorf("Expected 64-char hex digest, got %d chars", len(stored.PasswordHash))
	}
	if stored.IPAddress != "192.0.2.1" {
		t.Errorf("Expected stored IP, got %q", stored.IPAddress)
	}
	if !stored.IsApproved || stored.IsDeleted {
		t.Error("New comment should be approved and not deleted")
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(list))
	}
	if list[0].ID != created.ID {
		t.Errorf("List returned wrong comment: %q", list[0].ID)
	}
}

func TestCommentService_ListOrderAndCap(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	// Seed more comments than the list cap, each with a distinct timestamp
	base := time.Now().Add(-24 * time.Hour)
	total := models.MaxCommentListSize + 5
	for i := 0; i < total; i++ {
		id := uuid.New().String()
		created := base.Add(time.Duration(i) * time.Minute)
		repo.Comments[id] = &models.Comment{
			ID:         id,
			Name:       "Tester",
			Message:    fmt.Sprintf("comment %d", i),
			IsApproved: true,
			CreatedAt:  created,
			UpdatedAt:  created,
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != models.MaxCommentListSize {
		t.Fatalf("Expected list capped at %d, got %d", models.MaxCommentListSize, len(list))
	}

	// Newest first: the seed with the highest timestamp leads, and every
	// following entry is older than the one before it
	if want := fmt.Sprintf("comment %d", total-1); list[0].Message != want {
		t.Errorf("Expected newest comment %q first, got %q", want, list[0].Message)
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("List not ordered newest first at index %d", i)
		}
	}

	// The cap drops the oldest entries, not the newest
	if want := fmt.Sprintf("comment %d", total-models.MaxCommentListSize); list[len(list)-1].Message != want {
		t.Errorf("Expected oldest listed comment %q, got %q", want, list[len(list)-1].Message)
	}
}

func TestCommentService_CreateValidation(t *testing.T) {
	svc, _ := newTestCommentService()
	ctx := context.Background()

	tests := []struct {
		name      string
		req       *models.CreateCommentRequest
		wantField string
	}{
		{
			name:      "single character name",
			req:       &models.CreateCommentRequest{Name: "a", Password: "test1234", Message: "hi"},
			wantField: "name",
		},
		{
			name:      "missing name",
			req:       &models.CreateCommentRequest{Password: "test1234", Message: "hi"},
			wantField: "name",
		},
		{
			name:      "script in message",
			req:       &models.CreateCommentRequest{Name: "Tester", Password: "test1234", Message: "<script>alert(1)</script>"},
			wantField: "message",
		},
		{
			name:      "password too short",
			req:       &models.CreateCommentRequest{Name: "Tester", Password: "abc", Message: "hi"},
			wantField: "password",
		},
		{
			name:      "password too long",
			req:       &models.CreateCommentRequest{Name: "Tester", Password: "aaaaaaaaaaaaaaaaaaaaa", Message: "hi"},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req, "")
			var validationErr *validation.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, validationErr.Field)
			}
		})
	}
}

func TestCommentService_CreateSanitizesContent(t *testing.T) {
	svc, _ := newTestCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCommentRequest{
		Name:     "O'Brien",
		Password: "test1234",
		Message:  "5 > 3 & 2 < 4",
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "O&#x27;Brien" {
		t.Errorf("Name not entity-encoded: %q", created.Name)
	}
	if created.Message != "5 &gt; 3 &amp; 2 &lt; 4" {
		t.Errorf("Message not entity-encoded: %q", created.Message)
	}
}

func TestCommentService_CreateMaxLengthMessageExpands(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	// A message at the length ceiling made of characters that entity-encode
	// to multiple bytes must still be accepted; the stored text grows past
	// the pre-sanitize limit.
	message := strings.Repeat("&", models.MaxCommentMessageLength)
	created, err := svc.Create(ctx, &models.CreateCommentRequest{
		Name: "Tester", Password: "test1234", Message: message,
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored := repo.Comments[created.ID]
	if want := strings.Repeat("&amp;", models.MaxCommentMessageLength); stored.Message != want {
		t.Errorf("Stored message not entity-encoded as expected")
	}
	if len(stored.Message) <= models.MaxCommentMessageLength {
		t.Errorf("Expected sanitized message to exceed %d chars, got %d",
			models.MaxCommentMessageLength, len(stored.Message))
	}
}

func TestCommentService_Update(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCommentRequest{
		Name: "Tester", Password: "test1234", Message: "original",
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Wrong password leaves the record unchanged
	_, err = svc.Update(ctx, created.ID, &models.UpdateCommentRequest{
		Password: "wrongpass", Message: "hacked",
	})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Expected ErrInvalidPassword, got %v", err)
	}
	if repo.Comments[created.ID].Message != "original" {
		t.Error("Message changed despite wrong password")
	}

	// Correct password updates the message and refreshes updated_at
	beforeUpdate := repo.Comments[created.ID].UpdatedAt
	time.Sleep(time.Millisecond)
	updated, err := svc.Update(ctx, created.ID, &models.UpdateCommentRequest{
		Password: "test1234", Message: "edited",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Message != "edited" {
		t.Errorf("Expected message 'edited', got %q", updated.Message)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("CreatedAt must not change on update")
	}
	if !repo.Comments[created.ID].UpdatedAt.After(beforeUpdate) {
		t.Error("UpdatedAt not refreshed on update")
	}

	// Invalid id syntax is rejected before lookup
	_, err = svc.Update(ctx, "not-a-uuid", &models.UpdateCommentRequest{
		Password: "test1234", Message: "x",
	})
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}

	// Unknown id
	_, err = svc.Update(ctx, "00000000-0000-0000-0000-000000000000", &models.UpdateCommentRequest{
		Password: "test1234", Message: "x",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Dangerous replacement message is rejected after auth
	_, err = svc.Update(ctx, created.ID, &models.UpdateCommentRequest{
		Password: "test1234", Message: "<iframe src='x'>",
	})
	var validationErr *validation.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCommentService_Delete(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCommentRequest{
		Name: "Tester", Password: "test1234", Message: "to be removed",
	}, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Wrong password
	if err := svc.Delete(ctx, created.ID, "wrongpass"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("Expected ErrInvalidPassword, got %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("Comment disappeared after failed delete")
	}

	// Correct password soft-deletes and refreshes updated_at
	beforeDelete := repo.Comments[created.ID].UpdatedAt
	time.Sleep(time.Millisecond)
	if err := svc.Delete(ctx, created.ID, "test1234"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !repo.Comments[created.ID].UpdatedAt.After(beforeDelete) {
		t.Error("UpdatedAt not refreshed on delete")
	}
	if repo.Comments[created.ID].CreatedAt != created.CreatedAt {
		t.Error("CreatedAt must not change on delete")
	}

	list, _ = svc.List(ctx)
	if len(list) != 0 {
		t.Errorf("Deleted comment still listed")
	}

	count, _ := svc.Count(ctx)
	if count != 0 {
		t.Errorf("Expected count 0 after delete, got %d", count)
	}

	// Second delete of the same id
	if err := svc.Delete(ctx, created.ID, "test1234"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	// Update of a deleted comment
	_, err = svc.Update(ctx, created.ID, &models.UpdateCommentRequest{
		Password: "test1234", Message: "resurrect",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on update of deleted comment, got %v", err)
	}
}

func TestCommentService_Count(t *testing.T) {
	svc, repo := newTestCommentService()
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, msg := range []string{"one", "two", "three"} {
		created, err := svc.Create(ctx, &models.CreateCommentRequest{
			Name: "Tester", Password: "test1234", Message: msg,
		}, "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, created.ID)
	}

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}

	if err := svc.Delete(ctx, ids[0], "test1234"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	count, _ = svc.Count(ctx)
	if count != 2 {
		t.Errorf("Expected count 2 after delete, got %d", count)
	}

	// Unapproved comments are excluded from count and list
	repo.Comments[ids[1]].IsApproved = false
	count, _ = svc.Count(ctx)
	if count != 1 {
		t.Errorf("Expected count 1 with unapproved comment, got %d", count)
	}
	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Errorf("Expected 1 listed comment, got %d", len(list))
	}
}

func TestCommentService_ListStorageError(t *testing.T) {
	svc, repo := newTestCommentService()
	repo.Err = errors.New("connection refused")

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("Expected storage error to surface")
	}
}
