package mapper

import (
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

func ToInvoiceItems(invoices []domain.Invoice) []dto.InvoiceItem {
	items := make([]dto.InvoiceItem, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, ToInvoiceItem(invoice))
	}
	return items
}

func ToInvoiceItem(invoice domain.Invoice) dto.InvoiceItem {
	item := dto.InvoiceItem{
		ID:              invoice.ID,
		TaskIDs:         invoice.TaskIDs,
		CustomerName:    invoice.CustomerName,
		TotalAmount:     invoice.TotalAmount,
		Tasks:           invoice.TasksSnapshot,
		PaymentReceived: invoice.PaymentReceived,
		CreatedAt:       invoice.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       invoice.UpdatedAt.Format(time.RFC3339),
	}
	if invoice.PaymentReceivedDate != nil {
		value := invoice.PaymentReceivedDate.Format(time.RFC3339)
		item.PaymentReceivedDate = &value
	}
	return item
}
