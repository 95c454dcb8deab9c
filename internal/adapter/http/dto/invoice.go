package dto

import "encoding/json"

type InvoiceItem struct {
	ID                  string          `json:"id"`
	TaskIDs             []uint64        `json:"taskIds"`
	CustomerName        string          `json:"customerName"`
	TotalAmount         float64         `json:"totalAmount"`
	Tasks               json.RawMessage `json:"tasks"`
	PaymentReceived     bool            `json:"paymentReceived"`
	PaymentReceivedDate *string         `json:"paymentReceivedDate,omitempty"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
}

type CreateInvoiceRequest struct {
	TaskIDs      []uint64        `json:"taskIds" binding:"required,min=1"`
	CustomerName string          `json:"customerName" binding:"required"`
	TotalAmount  *float64        `json:"totalAmount" binding:"required"`
	Tasks        json.RawMessage `json:"tasks" binding:"required"`
}

type UpdateInvoiceRequest struct {
	PaymentReceived     *bool   `json:"paymentReceived"`
	PaymentReceivedDate *string `json:"paymentReceivedDate"`
}
