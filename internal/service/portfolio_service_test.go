package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/mocks"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/validation"
	"github.com/rs/zerolog"
)

func TestProjectService_CreateAndGet(t *testing.T) {
	repo := mocks.NewMockProjectRepository()
	svc := newProjectService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateProjectRequest{
		Title:      "Portfolio Website",
		Period:     "2024.01 - 2024.03",
		GithubURL:  "https://github.com/kgyujin/ksnu-portfolio",
		IsFeatured: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Created project should have an id")
	}

	// Each Get bumps the view count
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ViewCount != 1 {
		t.Errorf("Expected view count 1, got %d", got.ViewCount)
	}
	got, _ = svc.Get(ctx, created.ID)
	if got.ViewCount != 2 {
		t.Errorf("Expected view count 2, got %d", got.ViewCount)
	}

	if _, err := svc.Get(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown project, got %v", err)
	}
}

func TestProjectService_CreateValidation(t *testing.T) {
	repo := mocks.NewMockProjectRepository()
	svc := newProjectService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateProjectRequest{Title: ""})
	var validationErr *validation.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected validation error for missing title, got %v", err)
	}

	_, err = svc.Create(ctx, &models.CreateProjectRequest{
		Title:    "Bad URL",
		ImageURL: "not-a-url",
	})
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected validation error for bad image_url, got %v", err)
	}
}

func TestProjectService_ListFeatured(t *testing.T) {
	repo := mocks.NewMockProjectRepository()
	svc := newProjectService(repo, zerolog.Nop())
	ctx := context.Background()

	for _, p := range []struct {
		title    string
		featured bool
		views    int
	}{
		{"low", true, 2},
		{"high", true, 10},
		{"hidden", false, 100},
	} {
		created, err := svc.Create(ctx, &models.CreateProjectRequest{Title: p.title, IsFeatured: p.featured})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		repo.Projects[created.ID].ViewCount = p.views
	}

	featured, err := svc.ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("Expected 2 featured projects, got %d", len(featured))
	}
	if featured[0].Title != "high" || featured[1].Title != "low" {
		t.Errorf("Featured projects not ordered by view count: %s, %s", featured[0].Title, featured[1].Title)
	}
}

func TestSkillService_ListGrouped(t *testing.T) {
	repo := mocks.NewMockSkillRepository()
	repo.Skills = []*models.Skill{
		{ID: 1, Name: "Go", Category: "Backend", DisplayOrder: 1},
		{ID: 2, Name: "PostgreSQL", Category: "Backend", DisplayOrder: 2},
		{ID: 3, Name: "React", Category: "Frontend", DisplayOrder: 1},
		{ID: 4, Name: "Figma", Category: "", DisplayOrder: 1},
	}
	svc := newSkillService(repo, zerolog.Nop())
	ctx := context.Background()

	grouped, err := svc.ListGrouped(ctx)
	if err != nil {
		t.Fatalf("ListGrouped failed: %v", err)
	}
	if len(grouped["Backend"]) != 2 {
		t.Errorf("Expected 2 backend skills, got %d", len(grouped["Backend"]))
	}
	if len(grouped["Frontend"]) != 1 {
		t.Errorf("Expected 1 frontend skill, got %d", len(grouped["Frontend"]))
	}
	if len(grouped[models.DefaultSkillCategory]) != 1 {
		t.Errorf("Uncategorized skill should land in %q", models.DefaultSkillCategory)
	}

	filtered, err := svc.List(ctx, "Frontend")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "React" {
		t.Errorf("Category filter returned wrong skills: %+v", filtered)
	}
}

func TestStatsService_RecordAndGet(t *testing.T) {
	repo := mocks.NewMockVisitRepository()
	svc := newStatsService(repo, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.RecordVisit(ctx, "192.0.2.1"); err != nil {
			t.Fatalf("RecordVisit failed: %v", err)
		}
	}
	// One stale visit outside the recent window
	repo.Visits = append(repo.Visits, &models.Visit{
		IPAddress: "192.0.2.2",
		VisitedAt: time.Now().AddDate(0, 0, -models.RecentVisitDays-1),
	})

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalVisits != 4 {
		t.Errorf("Expected 4 total visits, got %d", stats.TotalVisits)
	}
	if len(stats.Recent) != 1 {
		t.Fatalf("Expected 1 recent day, got %d", len(stats.Recent))
	}
	if stats.Recent[0].Count != 3 {
		t.Errorf("Expected 3 visits today, got %d", stats.Recent[0].Count)
	}
}
