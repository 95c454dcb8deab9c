package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kcyeo92/Workshop-Manager/internal/app/service"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) AppendTaskEvent(ctx context.Context, id uint64, event domain.TaskEventInput) (domain.Task, error) {
	args := m.Called(ctx, id, event)
	return args.Get(0).(domain.Task), args.Error(1)
}

func TestTaskService_CreateTask_TrimsInput(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Customer == "Lim Ah Seng" &&
			input.VehiclePlateNo == "SKV1234A" &&
			input.LineItems[0].Description == "Brake pads" &&
			input.Workers[0].Name == "Ravi"
	})).Return(domain.Task{ID: 2026031201}, nil).Once()

	svc := service.NewTaskService(repo)
	_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		Customer:       "  Lim Ah Seng  ",
		VehiclePlateNo: " SKV1234A ",
		VehicleMake:    "Toyota",
		VehicleModel:   "Corolla",
		LineItems:      []domain.LineItemInput{{Description: " Brake pads ", Amount: 180}},
		Workers:        []domain.WorkerInput{{Name: " Ravi ", Wage: 80}},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_RejectsMissingFields(t *testing.T) {
	svc := service.NewTaskService(new(taskRepositoryMock))

	_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		Customer:       "Lim Ah Seng",
		VehiclePlateNo: "SKV1234A",
		VehicleMake:    "   ",
		VehicleModel:   "Corolla",
		LineItems:      []domain.LineItemInput{{Description: "Brake pads", Amount: 180}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_CreateTask_RejectsEmptyLineItems(t *testing.T) {
	svc := service.NewTaskService(new(taskRepositoryMock))

	_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		Customer:       "Lim Ah Seng",
		VehiclePlateNo: "SKV1234A",
		VehicleMake:    "Toyota",
		VehicleModel:   "Corolla",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_UpdateTask_RejectsBlankRequiredField(t *testing.T) {
	svc := service.NewTaskService(new(taskRepositoryMock))

	blank := "   "
	_, err := svc.UpdateTask(context.Background(), 2026031201, domain.UpdateTaskInput{Customer: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_UpdateTask_AllowsClearingWorkers(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("UpdateTask", mock.Anything, uint64(2026031201), mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.WorkersSet && len(input.Workers) == 0
	})).Return(domain.Task{ID: 2026031201}, nil).Once()

	svc := service.NewTaskService(repo)
	_, err := svc.UpdateTask(context.Background(), 2026031201, domain.UpdateTaskInput{
		WorkersSet: true,
		Workers:    []domain.WorkerInput{},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTaskService_AppendTaskEvent_RejectsUnknownType(t *testing.T) {
	svc := service.NewTaskService(new(taskRepositoryMock))

	_, err := svc.AppendTaskEvent(context.Background(), 2026031201, domain.TaskEventInput{
		Type:      domain.TaskEventType("mystery"),
		Timestamp: time.Now(),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_TaskTimeline_BuildsFromRepositoryData(t *testing.T) {
	createdAt := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	fromTodo := domain.TaskStatusTodo

	repo := new(taskRepositoryMock)
	repo.On("GetTask", mock.Anything, uint64(2026031201)).Return(domain.Task{
		ID:        2026031201,
		CreatedAt: createdAt,
		StatusHistory: []domain.StatusChange{
			{Status: domain.TaskStatusTodo, Timestamp: createdAt},
			{Status: domain.TaskStatusDone, FromStatus: &fromTodo, Timestamp: createdAt.Add(3 * time.Hour)},
		},
		Events: []domain.TaskEvent{
			{Type: domain.TaskEventPaymentReceived, Timestamp: createdAt.Add(4 * time.Hour)},
		},
	}, nil).Once()

	svc := service.NewTaskService(repo)
	entries, err := svc.TaskTimeline(context.Background(), 2026031201)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "3h", entries[1].Duration)
	require.Equal(t, domain.TimelineTaskEvent, entries[2].Kind)
	repo.AssertExpectations(t)
}

func TestTaskService_TaskTimeline_PropagatesNotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("GetTask", mock.Anything, uint64(2026031299)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	svc := service.NewTaskService(repo)
	_, err := svc.TaskTimeline(context.Background(), 2026031299)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertExpectations(t)
}
