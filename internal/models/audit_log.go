package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ActorID uint `json:"actor_id"`
	Actor   User `json:"-"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "lead", "task", "project", ...
	EntityID uint   `json:"entity_id"`
	Action   string `gorm:"size:50;not null" json:"action"` // "claim", "release", "status_change", ...
	Details  string `gorm:"type:text" json:"details"`
}
