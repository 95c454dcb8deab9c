package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusAssigned, TaskStatusProcessing, TaskStatusDone:
		return true
	}
	return false
}

type TaskEventType string

const (
	TaskEventInvoiceGenerated TaskEventType = "invoice_generated"
	TaskEventPaymentReceived  TaskEventType = "payment_received"
)

func (t TaskEventType) Valid() bool {
	return t == TaskEventInvoiceGenerated || t == TaskEventPaymentReceived
}

// Task is a workshop work order. Price and Paid are derived: Price is always
// the sum of line item amounts, Paid the sum of worker wages, recomputed in
// the same write that replaces the source collection.
type Task struct {
	ID             uint64
	Customer       string
	VehiclePlateNo string
	VehicleMake    string
	VehicleModel   string
	Description    *string
	Status         TaskStatus
	Price          float64
	Paid           float64
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LineItems      []LineItem
	Workers        []TaskWorker
	StatusHistory  []StatusChange
	Events         []TaskEvent
	Photos         []Photo
}

type LineItem struct {
	ID          uint64
	Description string
	Amount      float64
}

type TaskWorker struct {
	ID   uint64
	Name string
	Wage float64
	Paid bool
}

// StatusChange is one append-only audit entry. The first entry of a task has
// no FromStatus and its Timestamp equals the task's CreatedAt.
type StatusChange struct {
	Status     TaskStatus
	FromStatus *TaskStatus
	Timestamp  time.Time
}

type TaskEvent struct {
	Type          TaskEventType
	Timestamp     time.Time
	InvoiceNumber *string
}

// Photo is an opaque reference to an externally stored image.
type Photo struct {
	FileID   string
	FileName string
	URL      string
}

type LineItemInput struct {
	Description string
	Amount      float64
}

type WorkerInput struct {
	Name string
	Wage float64
	Paid bool
}

type CreateTaskInput struct {
	Customer       string
	VehiclePlateNo string
	VehicleMake    string
	VehicleModel   string
	Description    *string
	LineItems      []LineItemInput
	Workers        []WorkerInput
	Photos         []Photo
}

// UpdateTaskInput carries a partial update. The *Set flags record whether a
// field appeared in the payload at all, which is distinct from it being null:
// DescriptionSet with a nil Description clears the description.
type UpdateTaskInput struct {
	Customer       *string
	VehiclePlateNo *string
	VehicleMake    *string
	VehicleModel   *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	LineItems      []LineItemInput
	LineItemsSet   bool
	Workers        []WorkerInput
	WorkersSet     bool
}

type TaskEventInput struct {
	Type          TaskEventType
	Timestamp     time.Time
	InvoiceNumber *string
}

// SumLineItems returns the derived task price.
func SumLineItems(items []LineItemInput) float64 {
	var total float64
	for _, li := range items {
		total += li.Amount
	}
	return total
}

// SumWages returns the derived paid aggregate.
func SumWages(workers []WorkerInput) float64 {
	var total float64
	for _, w := range workers {
		total += w.Wage
	}
	return total
}
