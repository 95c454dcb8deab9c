package service

import (
	"context"
	"strings"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Customer = strings.TrimSpace(input.Customer)
	input.VehiclePlateNo = strings.TrimSpace(input.VehiclePlateNo)
	input.VehicleMake = strings.TrimSpace(input.VehicleMake)
	input.VehicleModel = strings.TrimSpace(input.VehicleModel)
	input.Description = trimOptional(input.Description)

	if input.Customer == "" || input.VehiclePlateNo == "" || input.VehicleMake == "" || input.VehicleModel == "" {
		return domain.Task{}, domain.ErrInvalidInput
	}

	items, ok := trimLineItems(input.LineItems)
	if !ok || len(items) == 0 {
		return domain.Task{}, domain.ErrInvalidInput
	}
	input.LineItems = items
	input.Workers = trimWorkers(input.Workers)

	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Customer != nil {
		value := strings.TrimSpace(*input.Customer)
		if value == "" {
			return domain.Task{}, domain.ErrInvalidInput
		}
		input.Customer = &value
	}
	if input.VehiclePlateNo != nil {
		value := strings.TrimSpace(*input.VehiclePlateNo)
		if value == "" {
			return domain.Task{}, domain.ErrInvalidInput
		}
		input.VehiclePlateNo = &value
	}
	if input.VehicleMake != nil {
		value := strings.TrimSpace(*input.VehicleMake)
		if value == "" {
			return domain.Task{}, domain.ErrInvalidInput
		}
		input.VehicleMake = &value
	}
	if input.VehicleModel != nil {
		value := strings.TrimSpace(*input.VehicleModel)
		if value == "" {
			return domain.Task{}, domain.ErrInvalidInput
		}
		input.VehicleModel = &value
	}
	if input.DescriptionSet {
		input.Description = trimOptional(input.Description)
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidInput
	}
	if input.LineItemsSet {
		items, ok := trimLineItems(input.LineItems)
		if !ok || len(items) == 0 {
			return domain.Task{}, domain.ErrInvalidInput
		}
		input.LineItems = items
	}
	if input.WorkersSet {
		input.Workers = trimWorkers(input.Workers)
	}

	return s.taskRepository.UpdateTask(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

func (s *TaskService) AppendTaskEvent(ctx context.Context, id uint64, event domain.TaskEventInput) (domain.Task, error) {
	if !event.Type.Valid() || event.Timestamp.IsZero() {
		return domain.Task{}, domain.ErrInvalidInput
	}
	return s.taskRepository.AppendTaskEvent(ctx, id, event)
}

func (s *TaskService) TaskTimeline(ctx context.Context, id uint64) ([]domain.TimelineEntry, error) {
	task, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.BuildTimeline(task.CreatedAt, task.StatusHistory, task.Events), nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimLineItems trims descriptions and rejects entries with an empty
// description or a negative amount.
func trimLineItems(items []domain.LineItemInput) ([]domain.LineItemInput, bool) {
	out := make([]domain.LineItemInput, 0, len(items))
	for _, li := range items {
		description := strings.TrimSpace(li.Description)
		if description == "" || li.Amount < 0 {
			return nil, false
		}
		out = append(out, domain.LineItemInput{Description: description, Amount: li.Amount})
	}
	return out, true
}

func trimWorkers(workers []domain.WorkerInput) []domain.WorkerInput {
	out := make([]domain.WorkerInput, 0, len(workers))
	for _, w := range workers {
		out = append(out, domain.WorkerInput{
			Name: strings.TrimSpace(w.Name),
			Wage: w.Wage,
			Paid: w.Paid,
		})
	}
	return out
}
