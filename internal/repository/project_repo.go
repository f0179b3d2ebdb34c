package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/database"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

const projectColumns = `id, title, period, description, skills, role, review,
	image_url, project_url, github_url, is_featured, view_count, created_at, updated_at`

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// Create inserts a new project and fills in the assigned ID
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, period, description, skills, role, review,
			image_url, project_url, github_url, is_featured, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $11)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		project.Title, project.Period, project.Description, project.Skills,
		project.Role, project.Review, project.ImageURL, project.ProjectURL,
		project.GithubURL, project.IsFeatured, now,
	).Scan(&project.ID)
}

// List returns all projects newest first
func (r *projectRepo) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	return r.queryProjects(ctx, query)
}

// ListFeatured returns featured projects ordered by view count
func (r *projectRepo) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE is_featured = TRUE ORDER BY view_count DESC`
	return r.queryProjects(ctx, query)
}

// GetByID retrieves a project by ID, nil when absent
func (r *projectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	var p models.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Period, &p.Description, &p.Skills, &p.Role,
		&p.Review, &p.ImageURL, &p.ProjectURL, &p.GithubURL,
		&p.IsFeatured, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// IncrementViewCount bumps a project's view counter
func (r *projectRepo) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE projects SET view_count = view_count + 1 WHERE id = $1", id,
	)
	return err
}

func (r *projectRepo) queryProjects(ctx context.Context, query string) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID, &p.Title, &p.Period, &p.Description, &p.Skills, &p.Role,
			&p.Review, &p.ImageURL, &p.ProjectURL, &p.GithubURL,
			&p.IsFeatured, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}

	return projects, rows.Err()
}
