package models

import (
	"time"
)

// Skill represents a single skill entry
type Skill struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DefaultSkillCategory is used when a skill row has no category set
const DefaultSkillCategory = "Other"
