package storage

import (
	"studio-backoffice/internal/models"

	"go.uber.org/zap"
)

// Audit records a mutation with its actor and rationale. Failures are logged
// and swallowed: the audit trail never blocks the operation it describes.
func (s *Store) Audit(actorID uint, entity string, entityID uint, action, details string) {
	rec := models.AuditLog{
		ActorID:  actorID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.log.Warn("audit write failed",
			zap.String("entity", entity),
			zap.Uint("entity_id", entityID),
			zap.Error(err))
	}
}

func (s *Store) ListAuditLogs(entity string, entityID uint) ([]models.AuditLog, error) {
	q := s.db.Order("created_at desc").Limit(500)
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if entityID != 0 {
		q = q.Where("entity_id = ?", entityID)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
