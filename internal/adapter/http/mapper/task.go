package mapper

import (
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Customer:       task.Customer,
		VehiclePlateNo: task.VehiclePlateNo,
		VehicleMake:    task.VehicleMake,
		VehicleModel:   task.VehicleModel,
		Status:         string(task.Status),
		Price:          task.Price,
		Paid:           task.Paid,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.Format(time.RFC3339),
		LineItems:      make([]dto.LineItem, 0, len(task.LineItems)),
		Workers:        make([]dto.TaskWorker, 0, len(task.Workers)),
		StatusHistory:  make([]dto.StatusChange, 0, len(task.StatusHistory)),
		TaskEvents:     make([]dto.TaskEventItem, 0, len(task.Events)),
		Photos:         make([]dto.Photo, 0, len(task.Photos)),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	for _, li := range task.LineItems {
		item.LineItems = append(item.LineItems, dto.LineItem{ID: li.ID, Description: li.Description, Amount: li.Amount})
	}
	for _, w := range task.Workers {
		item.Workers = append(item.Workers, dto.TaskWorker{ID: w.ID, Name: w.Name, Wage: w.Wage, Paid: w.Paid})
	}
	for _, h := range task.StatusHistory {
		change := dto.StatusChange{Status: string(h.Status), Timestamp: h.Timestamp.Format(time.RFC3339)}
		if h.FromStatus != nil {
			from := string(*h.FromStatus)
			change.FromStatus = &from
		}
		item.StatusHistory = append(item.StatusHistory, change)
	}
	for _, e := range task.Events {
		event := dto.TaskEventItem{Type: string(e.Type), Timestamp: e.Timestamp.Format(time.RFC3339)}
		if e.InvoiceNumber != nil {
			number := *e.InvoiceNumber
			event.InvoiceNumber = &number
		}
		item.TaskEvents = append(item.TaskEvents, event)
	}
	for _, p := range task.Photos {
		item.Photos = append(item.Photos, dto.Photo{FileID: p.FileID, FileName: p.FileName, URL: p.URL})
	}

	return item
}

func ToTimelineEntries(entries []domain.TimelineEntry) []dto.TimelineEntry {
	items := make([]dto.TimelineEntry, 0, len(entries))
	for _, entry := range entries {
		item := dto.TimelineEntry{
			Kind:      string(entry.Kind),
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		}
		switch entry.Kind {
		case domain.TimelineStatusChange:
			status := string(entry.Status)
			item.Status = &status
			if entry.FromStatus != nil {
				from := string(*entry.FromStatus)
				item.FromStatus = &from
			}
			duration := entry.Duration
			item.Duration = &duration
		case domain.TimelineTaskEvent:
			eventType := string(entry.EventType)
			item.EventType = &eventType
			if entry.InvoiceNumber != nil {
				number := *entry.InvoiceNumber
				item.InvoiceNumber = &number
			}
		}
		items = append(items, item)
	}
	return items
}
