package ports

import (
	"context"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	AppendTaskEvent(ctx context.Context, id uint64, event domain.TaskEventInput) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	AppendTaskEvent(ctx context.Context, id uint64, event domain.TaskEventInput) (domain.Task, error)
	TaskTimeline(ctx context.Context, id uint64) ([]domain.TimelineEntry, error)
}
