package service

import (
	"context"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
	"github.com/kgyujin/ksnu-portfolio/internal/repository"
	"github.com/rs/zerolog"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	repo repository.VisitRepository
	log  zerolog.Logger
}

func newStatsService(repo repository.VisitRepository, log zerolog.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With().Str("service", "stats").Logger(),
	}
}

// RecordVisit stores a visit row for the calling client
func (s *statsService) RecordVisit(ctx context.Context, ipAddress string) error {
	visit := &models.Visit{
		IPAddress: ipAddress,
		VisitedAt: time.Now(),
	}
	return s.repo.Record(ctx, visit)
}

// GetStats returns the all-time visit total and the last week's daily counts
func (s *statsService) GetStats(ctx context.Context) (*models.VisitStats, error) {
	total, err := s.repo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.CountRecentByDay(ctx, models.RecentVisitDays)
	if err != nil {
		return nil, err
	}

	return &models.VisitStats{
		TotalVisits: total,
		Recent:      recent,
	}, nil
}
