package ports

import (
	"context"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

type InvoiceRepository interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (domain.Invoice, error)
	// CreateInvoice allocates the next invoice number and persists the
	// invoice in one transaction, so concurrent callers never observe the
	// same sequence value.
	CreateInvoice(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (domain.Invoice, error)
	CreateInvoice(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}
