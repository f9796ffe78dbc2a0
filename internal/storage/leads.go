package storage

import (
	"time"

	"studio-backoffice/internal/models"
)

type LeadFilter struct {
	Status models.LeadStatus
	Type   models.LeadProjectType
}

func (s *Store) CreateLead(lead *models.Lead) error {
	lead.Status = models.LeadNew
	return s.db.Create(lead).Error
}

func (s *Store) GetLead(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, translate(err)
	}
	return &lead, nil
}

func (s *Store) ListLeads(f LeadFilter) ([]models.Lead, error) {
	q := s.db.Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var leads []models.Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus stamps contacted/converted timestamps on first entry into
// the respective status.
func (s *Store) UpdateLeadStatus(id uint, status models.LeadStatus) (*models.Lead, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lead.Status = status
	switch status {
	case models.LeadContacted:
		if lead.ContactedAt == nil {
			lead.ContactedAt = &now
		}
	case models.LeadConverted:
		if lead.ConvertedAt == nil {
			lead.ConvertedAt = &now
		}
	}

	if err := s.db.Save(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

// ArchiveLead soft-deletes; the row stays in the table with deleted_at set.
func (s *Store) ArchiveLead(id uint) error {
	res := s.db.Delete(&models.Lead{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
