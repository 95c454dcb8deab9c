package service

import (
	"context"
	"strings"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

// InvoiceService validates billing requests and delegates to the repository.
// Invoice creation and task-event annotation are deliberately two separate
// calls: a crash in between leaves an invoice with no matching task event,
// which is tolerated — the invoice is the source of truth, the event log is
// best-effort annotation.
type InvoiceService struct {
	invoiceRepository ports.InvoiceRepository
}

func NewInvoiceService(invoiceRepository ports.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepository: invoiceRepository}
}

var _ ports.InvoiceService = (*InvoiceService)(nil)

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepository.ListInvoices(ctx)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	return s.invoiceRepository.GetInvoice(ctx, id)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	if len(input.TaskIDs) == 0 || input.CustomerName == "" || len(input.TasksSnapshot) == 0 {
		return domain.Invoice{}, domain.ErrInvalidInput
	}
	return s.invoiceRepository.CreateInvoice(ctx, input)
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error) {
	return s.invoiceRepository.UpdateInvoice(ctx, id, input)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoiceRepository.DeleteInvoice(ctx, id)
}
