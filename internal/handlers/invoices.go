package handlers

import (
	"net/http"
	"strings"
	"time"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewInvoiceHandler(store *storage.Store, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{Store: store, Log: log}
}

type invoiceView struct {
	models.Invoice
	Overdue bool `json:"overdue"`
}

func toInvoiceViews(invoices []models.Invoice, now time.Time) []invoiceView {
	views := make([]invoiceView, len(invoices))
	for i, inv := range invoices {
		views[i] = invoiceView{Invoice: inv, Overdue: inv.Overdue(now)}
	}
	return views
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.Store.ListInvoices(storage.InvoiceFilter{
		Status:  models.InvoiceStatus(c.Query("status")),
		Type:    models.InvoiceType(c.Query("type")),
		Overdue: c.Query("overdue") == "true",
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, toInvoiceViews(invoices, time.Now()))
}

type invoiceCreateRequest struct {
	Number         string  `json:"number"`
	VariableSymbol string  `json:"variable_symbol"`
	Type           string  `json:"type"`
	ClientName     string  `json:"client_name"`
	Amount         float64 `json:"amount"`
	IssueDate      string  `json:"issue_date"` // 2006-01-02
	DueDate        string  `json:"due_date"`
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req invoiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	var errs validate.Errors
	if strings.TrimSpace(req.Number) == "" {
		errs = append(errs, validate.FieldError{Field: "number", Message: "required"})
	}
	if !models.ValidInvoiceType(models.InvoiceType(req.Type)) {
		errs = append(errs, validate.FieldError{Field: "type", Message: "unknown invoice type"})
	}
	if strings.TrimSpace(req.ClientName) == "" {
		errs = append(errs, validate.FieldError{Field: "client_name", Message: "required"})
	}
	if req.Amount <= 0 {
		errs = append(errs, validate.FieldError{Field: "amount", Message: "must be positive"})
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		errs = append(errs, validate.FieldError{Field: "issue_date", Message: "expected YYYY-MM-DD"})
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		errs = append(errs, validate.FieldError{Field: "due_date", Message: "expected YYYY-MM-DD"})
	}
	if errs != nil {
		respondValidation(c, errs)
		return
	}

	inv := &models.Invoice{
		Number:         strings.TrimSpace(req.Number),
		VariableSymbol: strings.TrimSpace(req.VariableSymbol),
		Type:           models.InvoiceType(req.Type),
		Status:         models.InvoiceDraft,
		ClientName:     strings.TrimSpace(req.ClientName),
		Amount:         req.Amount,
		IssueDate:      issueDate,
		DueDate:        dueDate,
	}
	if err := h.Store.CreateInvoice(inv); err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "invoice", inv.ID, "create", "created invoice "+inv.Number)
	respondOK(c, http.StatusCreated, inv)
}

type invoiceStatusRequest struct {
	Status string `json:"status"`
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req invoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	status := models.InvoiceStatus(req.Status)
	if !models.ValidInvoiceStatus(status) {
		respondValidation(c, validate.Errors{{Field: "status", Message: "unknown status"}})
		return
	}

	inv, err := h.Store.UpdateInvoiceStatus(id, status)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "invoice", inv.ID, "status_change", "status set to "+string(status))
	respondOK(c, http.StatusOK, inv)
}

type invoicePaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// RecordPayment is the webhook-shaped manual path: marks the invoice paid
// with the external payment reference.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req invoicePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	inv, err := h.Store.MarkInvoicePaid(id, strings.TrimSpace(req.PaymentID))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "invoice", inv.ID, "payment", "marked paid, payment "+req.PaymentID)
	respondOK(c, http.StatusOK, inv)
}
