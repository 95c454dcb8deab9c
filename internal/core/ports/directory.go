package ports

import (
	"context"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (domain.Customer, error)
	GetCustomerByName(ctx context.Context, name string) (domain.Customer, error)
	CreateCustomer(ctx context.Context, input domain.CustomerInput) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, input domain.CustomerInput) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type WorkerRepository interface {
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	GetWorker(ctx context.Context, id uint64) (domain.Worker, error)
	GetWorkerByName(ctx context.Context, name string) (domain.Worker, error)
	CreateWorker(ctx context.Context, input domain.WorkerDirectoryInput) (domain.Worker, error)
	UpdateWorker(ctx context.Context, id uint64, input domain.WorkerDirectoryInput) (domain.Worker, error)
	DeleteWorker(ctx context.Context, id uint64) error
}

type LineItemTemplateRepository interface {
	ListTemplates(ctx context.Context) ([]domain.LineItemTemplate, error)
	GetTemplate(ctx context.Context, id uint64) (domain.LineItemTemplate, error)
	GetTemplateByDescription(ctx context.Context, description string) (domain.LineItemTemplate, error)
	CreateTemplate(ctx context.Context, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error)
	UpdateTemplate(ctx context.Context, id uint64, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error)
	DeleteTemplate(ctx context.Context, id uint64) error
}

type DirectoryService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (domain.Customer, error)
	GetCustomerByName(ctx context.Context, name string) (domain.Customer, error)
	CreateCustomer(ctx context.Context, input domain.CustomerInput) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, input domain.CustomerInput) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint64) error

	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	GetWorker(ctx context.Context, id uint64) (domain.Worker, error)
	GetWorkerByName(ctx context.Context, name string) (domain.Worker, error)
	CreateWorker(ctx context.Context, input domain.WorkerDirectoryInput) (domain.Worker, error)
	UpdateWorker(ctx context.Context, id uint64, input domain.WorkerDirectoryInput) (domain.Worker, error)
	DeleteWorker(ctx context.Context, id uint64) error

	ListTemplates(ctx context.Context) ([]domain.LineItemTemplate, error)
	GetTemplate(ctx context.Context, id uint64) (domain.LineItemTemplate, error)
	GetTemplateByDescription(ctx context.Context, description string) (domain.LineItemTemplate, error)
	CreateTemplate(ctx context.Context, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error)
	UpdateTemplate(ctx context.Context, id uint64, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error)
	DeleteTemplate(ctx context.Context, id uint64) error
}
