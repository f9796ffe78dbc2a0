package models

import (
	"time"

	"gorm.io/gorm"
)

type RecPriority string
type RecStatus string

const (
	RecCritical RecPriority = "critical"
	RecHigh     RecPriority = "high"
	RecMedium   RecPriority = "medium"
	RecLow      RecPriority = "low"

	RecPending     RecStatus = "pending"
	RecApproved    RecStatus = "approved"
	RecRejected    RecStatus = "rejected"
	RecAutoApplied RecStatus = "auto_applied"
)

// Recommendation is a machine-generated campaign suggestion. The analyzer
// creates it pending; a reviewer resolves it exactly once (approve or
// reject), or policy auto-applies it. Resolved records are immutable.
type Recommendation struct {
	gorm.Model
	Type     string      `gorm:"size:100;not null" json:"type"`
	Priority RecPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status   RecStatus   `gorm:"type:varchar(20);not null" json:"status"`

	Reasoning string `gorm:"type:text;not null" json:"reasoning"`
	Impact    string `gorm:"type:text" json:"impact"`

	AutoApplicable  bool   `json:"auto_applicable"`
	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	ResolvedByID *uint      `json:"resolved_by_id,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func ValidRecPriority(p RecPriority) bool {
	switch p {
	case RecCritical, RecHigh, RecMedium, RecLow:
		return true
	}
	return false
}

func (s RecStatus) Resolved() bool {
	return s != RecPending
}
