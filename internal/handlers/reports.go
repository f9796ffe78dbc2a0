package handlers

import (
	"net/http"
	"time"

	"studio-backoffice/internal/reports"
	"studio-backoffice/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewReportHandler(store *storage.Store, log *zap.Logger) *ReportHandler {
	return &ReportHandler{Store: store, Log: log}
}

// Overview composes the dashboard aggregates in one response.
func (h *ReportHandler) Overview(c *gin.Context) {
	leads, err := h.Store.ListLeads(storage.LeadFilter{})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	tasks, err := h.Store.ListTasks(storage.TaskFilter{})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	projects, err := h.Store.ListProjects(storage.ProjectFilter{})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	invoices, err := h.Store.ListInvoices(storage.InvoiceFilter{})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	recs, err := h.Store.ListRecommendations(storage.RecommendationFilter{})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"leads":           reports.Leads(leads),
		"tasks":           reports.Tasks(tasks),
		"projects":        reports.Projects(projects),
		"invoices":        reports.Invoices(invoices, time.Now()),
		"recommendations": reports.Recommendations(recs),
	})
}

func (h *ReportHandler) AuditTrail(c *gin.Context) {
	var entityID uint
	if id, ok := optionalID(c.Query("entity_id")); ok {
		entityID = id
	}

	logs, err := h.Store.ListAuditLogs(c.Query("entity"), entityID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, logs)
}
