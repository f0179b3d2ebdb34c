package repository

import (
	"context"

	"github.com/kgyujin/ksnu-portfolio/internal/database"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

// CommentRepository defines the interface for comment data operations.
// All read paths see only active records (is_deleted = false,
// is_approved = true); soft-deleted rows stay in the table.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListActive(ctx context.Context, limit int) ([]*models.Comment, error)
	GetActiveByID(ctx context.Context, id string) (*models.Comment, error)
	UpdateMessage(ctx context.Context, id, message string) (*models.Comment, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
	CountActive(ctx context.Context) (int, error)
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListFeatured(ctx context.Context) ([]*models.Project, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

// SkillRepository defines the interface for skill data operations
type SkillRepository interface {
	List(ctx context.Context, category string) ([]*models.Skill, error)
}

// VisitRepository defines the interface for visit bookkeeping
type VisitRepository interface {
	Record(ctx context.Context, visit *models.Visit) error
	CountTotal(ctx context.Context) (int, error)
	CountRecentByDay(ctx context.Context, days int) ([]models.DailyVisits, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
	Project ProjectRepository
	Skill   SkillRepository
	Visit   VisitRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepo(db),
		Project: NewProjectRepo(db),
		Skill:   NewSkillRepo(db),
		Visit:   NewVisitRepo(db),
	}
}
