package service

import (
	"context"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/repository"
	"github.com/rs/zerolog"
)

// skillService is the concrete implementation of SkillService
type skillService struct {
	repo repository.SkillRepository
	log  zerolog.Logger
}

func newSkillService(repo repository.SkillRepository, log zerolog.Logger) SkillService {
	return &skillService{
		repo: repo,
		log:  log.With().Str("service", "skill").Logger(),
	}
}

// List returns skills, optionally filtered by category
func (s *skillService) List(ctx context.Context, category string) ([]*models.Skill, error) {
	return s.repo.List(ctx, category)
}

// ListGrouped returns skills grouped by category. Skills without a
// category land in the "Other" bucket.
func (s *skillService) ListGrouped(ctx context.Context) (map[string][]*models.Skill, error) {
	skills, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*models.Skill)
	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = models.DefaultSkillCategory
		}
		grouped[category] = append(grouped[category], skill)
	}

	return grouped, nil
}
