package models

import (
	"time"

	"gorm.io/gorm"
)

type InvoiceType string
type InvoiceStatus string

const (
	InvoiceStandard   InvoiceType = "standard"
	InvoiceProforma   InvoiceType = "proforma"
	InvoiceDeposit    InvoiceType = "deposit"
	InvoiceFinal      InvoiceType = "final"
	InvoiceCreditNote InvoiceType = "credit_note"

	InvoiceDraft           InvoiceStatus = "draft"
	InvoiceIssued          InvoiceStatus = "issued"
	InvoiceSent            InvoiceStatus = "sent"
	InvoiceAwaitingPayment InvoiceStatus = "awaiting_payment"
	InvoicePaid            InvoiceStatus = "paid"
	InvoiceCancelled       InvoiceStatus = "cancelled"
)

type Invoice struct {
	gorm.Model
	Number string `gorm:"size:50;uniqueIndex;not null" json:"number"`
	// VariableSymbol matches incoming bank payments to this invoice.
	VariableSymbol string `gorm:"size:10" json:"variable_symbol"`

	Type   InvoiceType   `gorm:"type:varchar(20);not null" json:"type"`
	Status InvoiceStatus `gorm:"type:varchar(20);not null" json:"status"`

	ClientName string  `gorm:"size:255;not null" json:"client_name"`
	Amount     float64 `gorm:"not null" json:"amount"`

	IssueDate time.Time  `json:"issue_date"`
	DueDate   time.Time  `json:"due_date"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	PaymentID *string    `gorm:"size:100" json:"payment_id,omitempty"`
}

func ValidInvoiceType(t InvoiceType) bool {
	switch t {
	case InvoiceStandard, InvoiceProforma, InvoiceDeposit, InvoiceFinal, InvoiceCreditNote:
		return true
	}
	return false
}

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoiceSent, InvoiceAwaitingPayment,
		InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// Overdue is derived, never stored: the due date has passed and the invoice
// is neither paid nor cancelled.
func (i Invoice) Overdue(now time.Time) bool {
	if i.Status == InvoicePaid || i.Status == InvoiceCancelled {
		return false
	}
	return now.After(i.DueDate)
}
