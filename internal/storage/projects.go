package storage

import (
	"time"

	"studio-backoffice/internal/models"

	"gorm.io/gorm/clause"
)

type ProjectFilter struct {
	Status     models.ProjectStatus
	AssigneeID uint
}

func (s *Store) CreateProject(p *models.Project) error {
	if p.Status == "" {
		p.Status = models.ProjectUnpaid
	}
	return s.db.Create(p).Error
}

func (s *Store) GetProject(id uint) (*models.Project, error) {
	var p models.Project
	if err := s.db.Preload("Assignee").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) ListProjects(f ProjectFilter) ([]models.Project, error) {
	q := s.db.Preload("Assignee").Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssigneeID != 0 {
		q = q.Where("assignee_id = ?", f.AssigneeID)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) UpdateProject(id uint, patch func(*models.Project)) (*models.Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	patch(p)
	if err := s.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Claim/release mirror the task coordinator; same conditional-update guard.

func (s *Store) ClaimProject(id, actorID uint) (*models.Project, error) {
	res := s.db.Model(&models.Project{}).
		Where("id = ? AND assignee_id IS NULL", id).
		Update("assignee_id", actorID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetProject(id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyAssigned
	}
	return s.GetProject(id)
}

func (s *Store) ReleaseProject(id, actorID uint, elevated bool) (*models.Project, error) {
	q := s.db.Model(&models.Project{}).Where("id = ? AND assignee_id IS NOT NULL", id)
	if !elevated {
		q = q.Where("assignee_id = ?", actorID)
	}

	res := q.Update("assignee_id", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		p, err := s.GetProject(id)
		if err != nil {
			return nil, err
		}
		if p.AssigneeID == nil {
			return nil, ErrConflict
		}
		return nil, ErrNotOwner
	}
	return s.GetProject(id)
}

func (s *Store) UpdateProjectStatus(id uint, status models.ProjectStatus) (*models.Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if p.Status.Terminal() {
		return nil, ErrConflict
	}

	p.Status = status
	if status == models.ProjectDelivered && p.DeliveredAt == nil {
		now := time.Now()
		p.DeliveredAt = &now
	}
	if err := s.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// RecordProjectPayment adds to the paid amount, capped at the total price.
func (s *Store) RecordProjectPayment(id uint, amount float64) (*models.Project, error) {
	if amount <= 0 {
		return nil, ErrConflict
	}
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	p.AmountPaid += amount
	if p.AmountPaid > p.TotalPrice {
		p.AmountPaid = p.TotalPrice
	}
	if err := s.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
