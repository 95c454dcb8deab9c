package mapper

import (
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

func ToCustomerItems(customers []domain.Customer) []dto.CustomerItem {
	items := make([]dto.CustomerItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, ToCustomerItem(customer))
	}
	return items
}

func ToCustomerItem(customer domain.Customer) dto.CustomerItem {
	return dto.CustomerItem{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     copyOptional(customer.Phone),
		Email:     copyOptional(customer.Email),
		Address:   copyOptional(customer.Address),
		Notes:     copyOptional(customer.Notes),
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt.Format(time.RFC3339),
		UpdatedAt: customer.UpdatedAt.Format(time.RFC3339),
	}
}

func ToWorkerItems(workers []domain.Worker) []dto.WorkerItem {
	items := make([]dto.WorkerItem, 0, len(workers))
	for _, worker := range workers {
		items = append(items, ToWorkerItem(worker))
	}
	return items
}

func ToWorkerItem(worker domain.Worker) dto.WorkerItem {
	return dto.WorkerItem{
		ID:         worker.ID,
		Name:       worker.Name,
		Phone:      copyOptional(worker.Phone),
		Email:      copyOptional(worker.Email),
		Address:    copyOptional(worker.Address),
		HourlyRate: worker.HourlyRate,
		Notes:      copyOptional(worker.Notes),
		IsActive:   worker.IsActive,
		CreatedAt:  worker.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  worker.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTemplateItems(templates []domain.LineItemTemplate) []dto.LineItemTemplateItem {
	items := make([]dto.LineItemTemplateItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, ToTemplateItem(template))
	}
	return items
}

func ToTemplateItem(template domain.LineItemTemplate) dto.LineItemTemplateItem {
	return dto.LineItemTemplateItem{
		ID:          template.ID,
		Description: template.Description,
		Category:    copyOptional(template.Category),
		IsActive:    template.IsActive,
		CreatedAt:   template.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   template.UpdatedAt.Format(time.RFC3339),
	}
}

func copyOptional(value *string) *string {
	if value == nil {
		return nil
	}
	result := *value
	return &result
}
