package domain

import (
	"encoding/json"
	"time"
)

// Invoice is an immutable billing record. TasksSnapshot is the caller-supplied
// task state at issuance time, stored verbatim and never recomputed; it is the
// legal record even if the source tasks change afterwards.
type Invoice struct {
	ID                  string
	TaskIDs             []uint64
	CustomerName        string
	TotalAmount         float64
	TasksSnapshot       json.RawMessage
	PaymentReceived     bool
	PaymentReceivedDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CreateInvoiceInput struct {
	TaskIDs       []uint64
	CustomerName  string
	TotalAmount   float64
	TasksSnapshot json.RawMessage
}

// UpdateInvoiceInput only covers the payment fields; everything else on an
// invoice is fixed at creation.
type UpdateInvoiceInput struct {
	PaymentReceived        *bool
	PaymentReceivedDate    *time.Time
	PaymentReceivedDateSet bool
}
