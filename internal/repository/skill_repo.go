package repository

import (
	"context"

	"github.com/kgyujin/ksnu-portfolio/internal/database"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

// skillRepo is the concrete implementation of SkillRepository
type skillRepo struct {
	db *database.DB
}

// NewSkillRepo creates a new skill repository
func NewSkillRepo(db *database.DB) SkillRepository {
	return &skillRepo{db: db}
}

// List returns skills ordered by display_order then name, optionally
// filtered by exact category match.
func (r *skillRepo) List(ctx context.Context, category string) ([]*models.Skill, error) {
	query := `
		SELECT id, name, category, display_order, created_at
		FROM skills
		ORDER BY display_order ASC, name ASC
	`
	args := []interface{}{}
	if category != "" {
		query = `
			SELECT id, name, category, display_order, created_at
			FROM skills
			WHERE category = $1
			ORDER BY display_order ASC, name ASC
		`
		args = append(args, category)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]*models.Skill, 0)
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.DisplayOrder, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}

	return skills, rows.Err()
}
