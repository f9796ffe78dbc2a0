package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskPriority string
type TaskStatus string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"

	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type Task struct {
	gorm.Model
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Domain      string `gorm:"size:255" json:"domain"`

	// AssigneeID is nil while the task is unclaimed. At most one assignee
	// at any time; mutated only through claim/release.
	AssigneeID *uint `json:"assignee_id"`
	Assignee   *User `json:"assignee,omitempty"`

	Priority TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status   TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`

	CreatedByID uint       `json:"created_by_id"`
	CreatedBy   User       `json:"-"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskCancelled
}
