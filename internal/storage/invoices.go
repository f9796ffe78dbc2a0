package storage

import (
	"time"

	"studio-backoffice/internal/models"
)

type InvoiceFilter struct {
	Status models.InvoiceStatus
	Type   models.InvoiceType
	// Overdue filters on the derived property after the query.
	Overdue bool
}

func (s *Store) CreateInvoice(inv *models.Invoice) error {
	if inv.Status == "" {
		inv.Status = models.InvoiceDraft
	}
	return translate(s.db.Create(inv).Error)
}

func (s *Store) GetInvoice(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *Store) ListInvoices(f InvoiceFilter) ([]models.Invoice, error) {
	q := s.db.Order("issue_date desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, err
	}

	if f.Overdue {
		now := time.Now()
		filtered := invoices[:0]
		for _, inv := range invoices {
			if inv.Overdue(now) {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}
	return invoices, nil
}

// invoiceStatusFlow lists the allowed next statuses. Cancellation is
// reachable from every non-terminal state; paid and cancelled are terminal.
var invoiceStatusFlow = map[models.InvoiceStatus][]models.InvoiceStatus{
	models.InvoiceDraft:           {models.InvoiceIssued, models.InvoiceCancelled},
	models.InvoiceIssued:          {models.InvoiceSent, models.InvoiceCancelled},
	models.InvoiceSent:            {models.InvoiceAwaitingPayment, models.InvoicePaid, models.InvoiceCancelled},
	models.InvoiceAwaitingPayment: {models.InvoicePaid, models.InvoiceCancelled},
}

func invoiceTransitionAllowed(from, to models.InvoiceStatus) bool {
	for _, next := range invoiceStatusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Store) UpdateInvoiceStatus(id uint, status models.InvoiceStatus) (*models.Invoice, error) {
	inv, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}
	if !invoiceTransitionAllowed(inv.Status, status) {
		return nil, ErrConflict
	}

	inv.Status = status
	if status == models.InvoicePaid && inv.PaidAt == nil {
		now := time.Now()
		inv.PaidAt = &now
	}
	if err := s.db.Save(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// MarkInvoicePaid is the payment-webhook path: jumps straight to paid with
// the external payment reference attached.
func (s *Store) MarkInvoicePaid(id uint, paymentID string) (*models.Invoice, error) {
	inv, err := s.GetInvoice(id)
	if err != nil {
		return nil, err
	}
	if inv.Status == models.InvoicePaid || inv.Status == models.InvoiceCancelled {
		return nil, ErrConflict
	}

	now := time.Now()
	inv.Status = models.InvoicePaid
	inv.PaidAt = &now
	if paymentID != "" {
		inv.PaymentID = &paymentID
	}
	if err := s.db.Save(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}
