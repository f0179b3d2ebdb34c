package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[string]*models.Comment
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) ListActive(ctx context.Context, limit int) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	active := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.IsApproved && !c.IsDeleted {
			active = append(active, c)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	if len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (m *MockCommentRepository) GetActiveByID(ctx context.Context, id string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Comments[id]
	if !ok || c.IsDeleted || !c.IsApproved {
		return nil, nil
	}
	return c, nil
}

func (m *MockCommentRepository) UpdateMessage(ctx context.Context, id, message string) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Comments[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	c.Message = message
	c.UpdatedAt = time.Now()
	return c, nil
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	c, ok := m.Comments[id]
	if !ok || c.IsDeleted {
		return false, nil
	}
	c.IsDeleted = true
	c.UpdatedAt = time.Now()
	return true, nil
}

func (m *MockCommentRepository) CountActive(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, c := range m.Comments {
		if c.IsApproved && !c.IsDeleted {
			count++
		}
	}
	return count, nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects map[int64]*models.Project
	NextID   int64
	Err      error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		Projects: make(map[int64]*models.Project),
		NextID:   1,
	}
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.Err != nil {
		return m.Err
	}
	project.ID = m.NextID
	m.NextID++
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	stored := *project
	m.Projects[project.ID] = &stored
	return nil
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	projects := make([]*models.Project, 0, len(m.Projects))
	for _, p := range m.Projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects[id], nil
}

func (m *MockProjectRepository) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	featured := make([]*models.Project, 0)
	for _, p := range m.Projects {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	sort.Slice(featured, func(i, j int) bool {
		return featured[i].ViewCount > featured[j].ViewCount
	})
	return featured, nil
}

func (m *MockProjectRepository) IncrementViewCount(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	if p, ok := m.Projects[id]; ok {
		p.ViewCount++
	}
	return nil
}

// MockSkillRepository is a mock implementation of SkillRepository
type MockSkillRepository struct {
	Skills []*models.Skill
	Err    error
}

func NewMockSkillRepository() *MockSkillRepository {
	return &MockSkillRepository{}
}

func (m *MockSkillRepository) List(ctx context.Context, category string) ([]*models.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	skills := make([]*models.Skill, 0)
	for _, s := range m.Skills {
		if category == "" || s.Category == category {
			skills = append(skills, s)
		}
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].DisplayOrder != skills[j].DisplayOrder {
			return skills[i].DisplayOrder < skills[j].DisplayOrder
		}
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

// MockVisitRepository is a mock implementation of VisitRepository
type MockVisitRepository struct {
	Visits []*models.Visit
	Err    error
}

func NewMockVisitRepository() *MockVisitRepository {
	return &MockVisitRepository{}
}

func (m *MockVisitRepository) Record(ctx context.Context, visit *models.Visit) error {
	if m.Err != nil {
		return m.Err
	}
	m.Visits = append(m.Visits, visit)
	return nil
}

func (m *MockVisitRepository) CountTotal(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Visits), nil
}

func (m *MockVisitRepository) CountRecentByDay(ctx context.Context, days int) ([]models.DailyVisits, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	since := time.Now().AddDate(0, 0, -days)
	byDay := make(map[string]int)
	for _, v := range m.Visits {
		if v.VisitedAt.After(since) {
			byDay[v.VisitedAt.Format("2006-01-02")]++
		}
	}
	daily := make([]models.DailyVisits, 0, len(byDay))
	for date, count := range byDay {
		daily = append(daily, models.DailyVisits{Date: date, Count: count})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date > daily[j].Date
	})
	return daily, nil
}
