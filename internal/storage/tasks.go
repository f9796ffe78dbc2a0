package storage

import (
	"time"

	"studio-backoffice/internal/models"

	"gorm.io/gorm/clause"
)

type TaskFilter struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssigneeID uint
	Unassigned bool
}

func (s *Store) CreateTask(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	return s.db.Create(task).Error
}

func (s *Store) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Assignee").First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *Store) ListTasks(f TaskFilter) ([]models.Task, error) {
	q := s.db.Preload("Assignee").Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.AssigneeID != 0 {
		q = q.Where("assignee_id = ?", f.AssigneeID)
	}
	if f.Unassigned {
		q = q.Where("assignee_id IS NULL")
	}

	var tasks []models.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) UpdateTask(id uint, patch func(*models.Task)) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	patch(task)
	if err := s.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// ClaimTask is a conditional single-statement update: it succeeds only when
// the row is still unassigned at execution time, so two concurrent claims
// cannot both win. Zero rows affected means either the task is gone or
// someone holds it; the follow-up read tells which.
func (s *Store) ClaimTask(id, actorID uint) (*models.Task, error) {
	res := s.db.Model(&models.Task{}).
		Where("id = ? AND assignee_id IS NULL", id).
		Update("assignee_id", actorID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetTask(id); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyAssigned
	}
	return s.GetTask(id)
}

// ReleaseTask clears the assignee, guarded on ownership unless the actor has
// an elevated role.
func (s *Store) ReleaseTask(id, actorID uint, elevated bool) (*models.Task, error) {
	q := s.db.Model(&models.Task{}).Where("id = ? AND assignee_id IS NOT NULL", id)
	if !elevated {
		q = q.Where("assignee_id = ?", actorID)
	}

	res := q.Update("assignee_id", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		task, err := s.GetTask(id)
		if err != nil {
			return nil, err
		}
		if task.AssigneeID == nil {
			return nil, ErrConflict
		}
		return nil, ErrNotOwner
	}
	return s.GetTask(id)
}

func (s *Store) UpdateTaskStatus(id uint, status models.TaskStatus) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task.Status.Terminal() {
		return nil, ErrConflict
	}

	task.Status = status
	if status == models.TaskCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}
	if err := s.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}
