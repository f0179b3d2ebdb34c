package repository

import (
	"context"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/database"
	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

// visitRepo is the concrete implementation of VisitRepository
type visitRepo struct {
	db *database.DB
}

// NewVisitRepo creates a new visit repository
func NewVisitRepo(db *database.DB) VisitRepository {
	return &visitRepo{db: db}
}

// Record inserts a visit row
func (r *visitRepo) Record(ctx context.Context, visit *models.Visit) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO visits (ip_address, visited_at) VALUES ($1, $2)",
		visit.IPAddress, visit.VisitedAt,
	)
	return err
}

// CountTotal returns the all-time visit count
func (r *visitRepo) CountTotal(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits").Scan(&count)
	return count, err
}

// CountRecentByDay returns per-day visit counts for the last N days,
// most recent day first.
func (r *visitRepo) CountRecentByDay(ctx context.Context, days int) ([]models.DailyVisits, error) {
	query := `
		SELECT TO_CHAR(visited_at::date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM visits
		WHERE visited_at >= $1
		GROUP BY day
		ORDER BY day DESC
	`
	since := time.Now().AddDate(0, 0, -days)
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	daily := make([]models.DailyVisits, 0)
	for rows.Next() {
		var d models.DailyVisits
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		daily = append(daily, d)
	}

	return daily, rows.Err()
}
