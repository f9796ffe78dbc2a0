package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectUnpaid        ProjectStatus = "unpaid"
	ProjectInProgress    ProjectStatus = "in_progress"
	ProjectDelivered     ProjectStatus = "delivered"
	ProjectWarrantyEnded ProjectStatus = "warranty_ended"
	ProjectCancelled     ProjectStatus = "cancelled"
	ProjectPaused        ProjectStatus = "paused"
)

// Project is a paid client engagement. Assignment works exactly like Task's:
// one assignee or none, claim/release only.
type Project struct {
	gorm.Model
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ClientName  string `gorm:"size:255;not null" json:"client_name"`

	TotalPrice float64 `json:"total_price"`
	AmountPaid float64 `json:"amount_paid"`

	AssigneeID *uint `json:"assignee_id"`
	Assignee   *User `json:"assignee,omitempty"`

	Status ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedByID uint       `json:"created_by_id"`
	CreatedBy   User       `json:"-"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectUnpaid, ProjectInProgress, ProjectDelivered,
		ProjectWarrantyEnded, ProjectCancelled, ProjectPaused:
		return true
	}
	return false
}

func (s ProjectStatus) Terminal() bool {
	return s == ProjectWarrantyEnded || s == ProjectCancelled
}
