package storage

import (
	"time"

	"studio-backoffice/internal/models"
)

type RecommendationFilter struct {
	Status   models.RecStatus
	Priority models.RecPriority
}

func (s *Store) CreateRecommendation(rec *models.Recommendation) error {
	rec.Status = models.RecPending
	return s.db.Create(rec).Error
}

func (s *Store) GetRecommendation(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := s.db.First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *Store) ListRecommendations(f RecommendationFilter) ([]models.Recommendation, error) {
	q := s.db.Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var recs []models.Recommendation
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ResolveRecommendation moves a pending recommendation into exactly one
// terminal state. The update is guarded on status = pending so a second
// resolution attempt affects zero rows and fails with ErrAlreadyResolved,
// whatever order concurrent reviewers arrive in.
func (s *Store) ResolveRecommendation(id uint, status models.RecStatus, resolvedBy *uint, reason string) (*models.Recommendation, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"resolved_at": now,
	}
	if resolvedBy != nil {
		updates["resolved_by_id"] = *resolvedBy
	}
	if reason != "" {
		updates["rejection_reason"] = reason
	}

	res := s.db.Model(&models.Recommendation{}).
		Where("id = ? AND status = ?", id, models.RecPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetRecommendation(id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyResolved
	}
	return s.GetRecommendation(id)
}
