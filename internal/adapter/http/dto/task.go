package dto

type TaskItem struct {
	ID             uint64          `json:"id"`
	Customer       string          `json:"customer"`
	VehiclePlateNo string          `json:"vehiclePlateNo"`
	VehicleMake    string          `json:"vehicleMake"`
	VehicleModel   string          `json:"vehicleModel"`
	Description    *string         `json:"description,omitempty"`
	Status         string          `json:"status"`
	Price          float64         `json:"price"`
	Paid           float64         `json:"paid"`
	CompletedAt    *string         `json:"completedAt,omitempty"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
	LineItems      []LineItem      `json:"lineItems"`
	Workers        []TaskWorker    `json:"workers"`
	StatusHistory  []StatusChange  `json:"statusHistory"`
	TaskEvents     []TaskEventItem `json:"taskEvents"`
	Photos         []Photo         `json:"photos"`
}

type LineItem struct {
	ID          uint64  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type TaskWorker struct {
	ID   uint64  `json:"id"`
	Name string  `json:"name"`
	Wage float64 `json:"wage"`
	Paid bool    `json:"paid"`
}

type StatusChange struct {
	Status     string  `json:"status"`
	FromStatus *string `json:"fromStatus,omitempty"`
	Timestamp  string  `json:"timestamp"`
}

type TaskEventItem struct {
	Type          string  `json:"type"`
	Timestamp     string  `json:"timestamp"`
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
}

type Photo struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

type LineItemPayload struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type WorkerPayload struct {
	Name string  `json:"name"`
	Wage float64 `json:"wage"`
	Paid bool    `json:"paid"`
}

type CreateTaskRequest struct {
	Customer       string            `json:"customer" binding:"required"`
	VehiclePlateNo string            `json:"vehiclePlateNo" binding:"required"`
	VehicleMake    string            `json:"vehicleMake" binding:"required"`
	VehicleModel   string            `json:"vehicleModel" binding:"required"`
	Description    *string           `json:"description"`
	LineItems      []LineItemPayload `json:"lineItems" binding:"required,min=1"`
	Workers        []WorkerPayload   `json:"workers"`
	Photos         []Photo           `json:"photos"`
}

type UpdateTaskRequest struct {
	Customer       *string            `json:"customer"`
	VehiclePlateNo *string            `json:"vehiclePlateNo"`
	VehicleMake    *string            `json:"vehicleMake"`
	VehicleModel   *string            `json:"vehicleModel"`
	Description    *string            `json:"description"`
	Status         *string            `json:"status" binding:"omitempty,oneof=todo assigned processing done"`
	LineItems      *[]LineItemPayload `json:"lineItems"`
	Workers        *[]WorkerPayload   `json:"workers"`
}

type AddTaskEventRequest struct {
	Type          string  `json:"type" binding:"required,oneof=invoice_generated payment_received"`
	Timestamp     string  `json:"timestamp" binding:"required"`
	InvoiceNumber *string `json:"invoiceNumber"`
}

type TimelineEntry struct {
	Kind          string  `json:"kind"`
	Status        *string `json:"status,omitempty"`
	FromStatus    *string `json:"fromStatus,omitempty"`
	EventType     *string `json:"eventType,omitempty"`
	InvoiceNumber *string `json:"invoiceNumber,omitempty"`
	Timestamp     string  `json:"timestamp"`
	Duration      *string `json:"duration,omitempty"`
}
