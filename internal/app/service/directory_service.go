package service

import (
	"context"
	"strings"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

type DirectoryService struct {
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	templates ports.LineItemTemplateRepository
}

func NewDirectoryService(
	customers ports.CustomerRepository,
	workers ports.WorkerRepository,
	templates ports.LineItemTemplateRepository,
) *DirectoryService {
	return &DirectoryService{customers: customers, workers: workers, templates: templates}
}

var _ ports.DirectoryService = (*DirectoryService)(nil)

func (s *DirectoryService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func (s *DirectoryService) GetCustomer(ctx context.Context, id uint64) (domain.Customer, error) {
	return s.customers.GetCustomer(ctx, id)
}

func (s *DirectoryService) GetCustomerByName(ctx context.Context, name string) (domain.Customer, error) {
	return s.customers.GetCustomerByName(ctx, name)
}

func (s *DirectoryService) CreateCustomer(ctx context.Context, input domain.CustomerInput) (domain.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.Customer{}, domain.ErrInvalidInput
	}
	trimContacts(&input.Phone, &input.Email, &input.Address, &input.Notes)
	return s.customers.CreateCustomer(ctx, input)
}

func (s *DirectoryService) UpdateCustomer(ctx context.Context, id uint64, input domain.CustomerInput) (domain.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	trimContacts(&input.Phone, &input.Email, &input.Address, &input.Notes)
	return s.customers.UpdateCustomer(ctx, id, input)
}

func (s *DirectoryService) DeleteCustomer(ctx context.Context, id uint64) error {
	return s.customers.DeleteCustomer(ctx, id)
}

func (s *DirectoryService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return s.workers.ListWorkers(ctx)
}

func (s *DirectoryService) GetWorker(ctx context.Context, id uint64) (domain.Worker, error) {
	return s.workers.GetWorker(ctx, id)
}

func (s *DirectoryService) GetWorkerByName(ctx context.Context, name string) (domain.Worker, error) {
	return s.workers.GetWorkerByName(ctx, name)
}

func (s *DirectoryService) CreateWorker(ctx context.Context, input domain.WorkerDirectoryInput) (domain.Worker, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.Worker{}, domain.ErrInvalidInput
	}
	trimContacts(&input.Phone, &input.Email, &input.Address, &input.Notes)
	return s.workers.CreateWorker(ctx, input)
}

func (s *DirectoryService) UpdateWorker(ctx context.Context, id uint64, input domain.WorkerDirectoryInput) (domain.Worker, error) {
	input.Name = strings.TrimSpace(input.Name)
	trimContacts(&input.Phone, &input.Email, &input.Address, &input.Notes)
	return s.workers.UpdateWorker(ctx, id, input)
}

func (s *DirectoryService) DeleteWorker(ctx context.Context, id uint64) error {
	return s.workers.DeleteWorker(ctx, id)
}

func (s *DirectoryService) ListTemplates(ctx context.Context) ([]domain.LineItemTemplate, error) {
	return s.templates.ListTemplates(ctx)
}

func (s *DirectoryService) GetTemplate(ctx context.Context, id uint64) (domain.LineItemTemplate, error) {
	return s.templates.GetTemplate(ctx, id)
}

func (s *DirectoryService) GetTemplateByDescription(ctx context.Context, description string) (domain.LineItemTemplate, error) {
	return s.templates.GetTemplateByDescription(ctx, description)
}

func (s *DirectoryService) CreateTemplate(ctx context.Context, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error) {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return domain.LineItemTemplate{}, domain.ErrInvalidInput
	}
	input.Category = trimOptional(input.Category)
	return s.templates.CreateTemplate(ctx, input)
}

func (s *DirectoryService) UpdateTemplate(ctx context.Context, id uint64, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Category = trimOptional(input.Category)
	return s.templates.UpdateTemplate(ctx, id, input)
}

func (s *DirectoryService) DeleteTemplate(ctx context.Context, id uint64) error {
	return s.templates.DeleteTemplate(ctx, id)
}

func trimContacts(fields ...**string) {
	for _, field := range fields {
		*field = trimOptional(*field)
	}
}
