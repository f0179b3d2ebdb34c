package service

import (
	"context"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/repository"
	"github.com/rs/zerolog"
)

// CommentService defines the interface for comment lifecycle operations
type CommentService interface {
	List(ctx context.Context) ([]*models.CommentResponse, error)
	Create(ctx context.Context, req *models.CreateCommentRequest, ipAddress string) (*models.CommentResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateCommentRequest) (*models.CommentResponse, error)
	Delete(ctx context.Context, id, password string) error
	Count(ctx context.Context) (int, error)
}

// ProjectService defines the interface for project operations
type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	ListFeatured(ctx context.Context) ([]*models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
}

// SkillService defines the interface for skill operations
type SkillService interface {
	List(ctx context.Context, category string) ([]*models.Skill, error)
	ListGrouped(ctx context.Context) (map[string][]*models.Skill, error)
}

// StatsService defines the interface for visit statistics
type StatsService interface {
	RecordVisit(ctx context.Context, ipAddress string) error
	GetStats(ctx context.Context) (*models.VisitStats, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
	Project ProjectService
	Skill   SkillService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, log),
		Project: newProjectService(repos.Project, log),
		Skill:   newSkillService(repos.Skill, log),
		Stats:   newStatsService(repos.Visit, log),
	}
}
