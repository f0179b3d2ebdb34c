package service

import (
	"context"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/repository"
	"github.com/kgyujin/ksnu-portfolio/internal/validation"
	"github.com/rs/zerolog"
)

// projectService is the concrete implementation of ProjectService
type projectService struct {
	repo repository.ProjectRepository
	log  zerolog.Logger
}

func newProjectService(repo repository.ProjectRepository, log zerolog.Logger) ProjectService {
	return &projectService{
		repo: repo,
		log:  log.With().Str("service", "project").Logger(),
	}
}

// List returns all projects newest first
func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

// Get increments a project's view count and returns it
func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// ListFeatured returns featured projects ordered by view count
func (s *projectService) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListFeatured(ctx)
}

// Create validates and stores a new project
func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := validation.ValidateTextField("title", req.Title, 1, 255); err != nil {
		return nil, err
	}
	for field, value := range map[string]string{
		"image_url":   req.ImageURL,
		"project_url": req.ProjectURL,
		"github_url":  req.GithubURL,
	} {
		if err := validation.ValidateOptionalURL(field, value); err != nil {
			return nil, err
		}
	}

	project := &models.Project{
		Title:       req.Title,
		Period:      req.Period,
		Description: req.Description,
		Skills:      req.Skills,
		Role:        req.Role,
		Review:      req.Review,
		ImageURL:    req.ImageURL,
		ProjectURL:  req.ProjectURL,
		GithubURL:   req.GithubURL,
		IsFeatured:  req.IsFeatured,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info().Int64("project_id", project.ID).Str("title", project.Title).Msg("Project created")
	return project, nil
}
