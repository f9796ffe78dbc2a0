package validate

import (
	"strings"

	"studio-backoffice/internal/models"
)

type TaskSubmission struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Domain      string `json:"domain"`
	Priority    string `json:"priority"`
}

// Task validates an admin task-creation payload.
func Task(in TaskSubmission) (*models.Task, Errors) {
	var errs Errors

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs.add("title", "required")
	} else if len(title) < 3 {
		errs.add("title", "too short")
	}

	priority := models.TaskPriority(in.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	} else if !models.ValidTaskPriority(priority) {
		errs.add("priority", "unknown priority")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Domain:      strings.TrimSpace(in.Domain),
		Priority:    priority,
		Status:      models.TaskPending,
	}, nil
}

type RecommendationSubmission struct {
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Reasoning      string `json:"reasoning"`
	Impact         string `json:"impact"`
	AutoApplicable bool   `json:"auto_applicable"`
}

// Recommendation validates an analyzer submission from the automation API.
func Recommendation(in RecommendationSubmission) (*models.Recommendation, Errors) {
	var errs Errors

	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		errs.add("type", "required")
	}

	priority := models.RecPriority(in.Priority)
	if !models.ValidRecPriority(priority) {
		errs.add("priority", "unknown priority")
	}

	if strings.TrimSpace(in.Reasoning) == "" {
		errs.add("reasoning", "required")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Recommendation{
		Type:           typ,
		Priority:       priority,
		Reasoning:      strings.TrimSpace(in.Reasoning),
		Impact:         strings.TrimSpace(in.Impact),
		AutoApplicable: in.AutoApplicable,
	}, nil
}
