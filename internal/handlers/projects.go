package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewProjectHandler(store *storage.Store, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{Store: store, Log: log}
}

type projectCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ClientName  string  `json:"client_name"`
	TotalPrice  float64 `json:"total_price"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req projectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	var errs validate.Errors
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, validate.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(req.ClientName) == "" {
		errs = append(errs, validate.FieldError{Field: "client_name", Message: "required"})
	}
	if req.TotalPrice < 0 {
		errs = append(errs, validate.FieldError{Field: "total_price", Message: "must not be negative"})
	}
	if errs != nil {
		respondValidation(c, errs)
		return
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ClientName:  strings.TrimSpace(req.ClientName),
		TotalPrice:  req.TotalPrice,
		Status:      models.ProjectUnpaid,
		CreatedByID: actor.ID,
	}
	if err := h.Store.CreateProject(project); err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "project", project.ID, "create", "created project: "+project.Title)
	respondOK(c, http.StatusCreated, project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Store.ListProjects(storage.ProjectFilter{
		Status: models.ProjectStatus(c.Query("status")),
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	project, err := h.Store.GetProject(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, project)
}

func (h *ProjectHandler) Claim(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	project, err := h.Store.ClaimProject(id, actor.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "project", project.ID, "claim",
		fmt.Sprintf("claimed by user %d", actor.ID))
	respondOK(c, http.StatusOK, project)
}

func (h *ProjectHandler) Release(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	project, err := h.Store.ReleaseProject(id, actor.ID, actor.Role.Elevated())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "project", project.ID, "release",
		fmt.Sprintf("released by user %d", actor.ID))
	respondOK(c, http.StatusOK, project)
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req projectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	status := models.ProjectStatus(req.Status)
	if !models.ValidProjectStatus(status) {
		respondValidation(c, validate.Errors{{Field: "status", Message: "unknown status"}})
		return
	}

	project, err := h.Store.UpdateProjectStatus(id, status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "project", project.ID, "status_change", "status set to "+string(status))
	respondOK(c, http.StatusOK, project)
}

type projectPaymentRequest struct {
	Amount float64 `json:"amount"`
}

func (h *ProjectHandler) RecordPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req projectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	project, err := h.Store.RecordProjectPayment(id, req.Amount)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "project", project.ID, "payment",
		fmt.Sprintf("payment of %.2f recorded", req.Amount))
	respondOK(c, http.StatusOK, project)
}
