package models

import (
	"time"
)

// Visit represents a single recorded site visit
type Visit struct {
	ID        int64     `json:"id" db:"id"`
	IPAddress string    `json:"-" db:"ip_address"`
	VisitedAt time.Time `json:"visited_at" db:"visited_at"`
}

// DailyVisits is one day's aggregated visit count
type DailyVisits struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// VisitStats is the response of GET /api/stats
type VisitStats struct {
	TotalVisits int           `json:"total_visits"`
	Recent      []DailyVisits `json:"recent"`
}

// RecentVisitDays is the window of the per-day visit breakdown
const RecentVisitDays = 7
