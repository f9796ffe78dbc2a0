package handlers

import (
	"net/http"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewLeadHandler(store *storage.Store, log *zap.Logger) *LeadHandler {
	return &LeadHandler{Store: store, Log: log}
}

// Submit is the public quote-request endpoint. No record is created unless
// every field validates.
func (h *LeadHandler) Submit(c *gin.Context) {
	var req validate.LeadSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	lead, errs := validate.Lead(req)
	if errs != nil {
		respondValidation(c, errs)
		return
	}

	lead.PublicID = uuid.NewString()
	if err := h.Store.CreateLead(lead); err != nil {
		h.Log.Error("lead create failed", zap.Error(err))
		respondStoreError(c, err)
		return
	}

	h.Log.Info("lead submitted",
		zap.String("public_id", lead.PublicID),
		zap.String("project_type", string(lead.Type)))

	respondOK(c, http.StatusCreated, gin.H{"public_id": lead.PublicID})
}

func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Store.ListLeads(storage.LeadFilter{
		Status: models.LeadStatus(c.Query("status")),
		Type:   models.LeadProjectType(c.Query("type")),
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, leads)
}

func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	lead, err := h.Store.GetLead(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, lead)
}

type leadStatusRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req leadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	status := models.LeadStatus(req.Status)
	if !models.ValidLeadStatus(status) {
		respondValidation(c, validate.Errors{{Field: "status", Message: "unknown status"}})
		return
	}

	lead, err := h.Store.UpdateLeadStatus(id, status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if actor, ok := middleware.ActorFrom(c); ok {
		h.Store.Audit(actor.ID, "lead", lead.ID, "status_change", "status set to "+string(status))
	}
	respondOK(c, http.StatusOK, lead)
}

// Archive soft-deletes; the lead stays queryable in the database.
func (h *LeadHandler) Archive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Store.ArchiveLead(id); err != nil {
		respondStoreError(c, err)
		return
	}

	if actor, ok := middleware.ActorFrom(c); ok {
		h.Store.Audit(actor.ID, "lead", id, "archive", "lead archived")
	}
	respondOK(c, http.StatusOK, gin.H{"archived": true})
}
