package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewTaskHandler(store *storage.Store, log *zap.Logger) *TaskHandler {
	return &TaskHandler{Store: store, Log: log}
}

func (h *TaskHandler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req validate.TaskSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	task, errs := validate.Task(req)
	if errs != nil {
		respondValidation(c, errs)
		return
	}

	task.CreatedByID = actor.ID
	if err := h.Store.CreateTask(task); err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "task", task.ID, "create", "created task: "+task.Title)
	respondOK(c, http.StatusCreated, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	f := storage.TaskFilter{
		Status:     models.TaskStatus(c.Query("status")),
		Priority:   models.TaskPriority(c.Query("priority")),
		Unassigned: c.Query("unassigned") == "true",
	}
	if v := c.Query("assignee_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			f.AssigneeID = uint(id)
		}
	}

	tasks, err := h.Store.ListTasks(f)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.Store.GetTask(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, task)
}

type taskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Domain      *string `json:"domain"`
	Priority    *string `json:"priority"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Priority != nil && !models.ValidTaskPriority(models.TaskPriority(*req.Priority)) {
		respondValidation(c, validate.Errors{{Field: "priority", Message: "unknown priority"}})
		return
	}

	task, err := h.Store.UpdateTask(id, func(t *models.Task) {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Domain != nil {
			t.Domain = *req.Domain
		}
		if req.Priority != nil {
			t.Priority = models.TaskPriority(*req.Priority)
		}
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, task)
}

// Claim attaches the task exclusively to the calling actor. A task someone
// else holds answers already_assigned, never a silent overwrite.
func (h *TaskHandler) Claim(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	task, err := h.Store.ClaimTask(id, actor.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "task", task.ID, "claim",
		fmt.Sprintf("claimed by user %d", actor.ID))
	respondOK(c, http.StatusOK, task)
}

func (h *TaskHandler) Release(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	task, err := h.Store.ReleaseTask(id, actor.ID, actor.Role.Elevated())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "task", task.ID, "release",
		fmt.Sprintf("released by user %d", actor.ID))
	respondOK(c, http.StatusOK, task)
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus lets the assignee (or an elevated role) move the task along.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	status := models.TaskStatus(req.Status)
	if !models.ValidTaskStatus(status) {
		respondValidation(c, validate.Errors{{Field: "status", Message: "unknown status"}})
		return
	}

	task, err := h.Store.GetTask(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !actor.Role.Elevated() && (task.AssigneeID == nil || *task.AssigneeID != actor.ID) {
		respondError(c, http.StatusForbidden, "not_owner", "only the assignee may change task status")
		return
	}

	task, err = h.Store.UpdateTaskStatus(id, status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "task", task.ID, "status_change", "status set to "+string(status))
	respondOK(c, http.StatusOK, task)
}
