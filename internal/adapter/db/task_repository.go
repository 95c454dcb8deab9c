package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

// TaskRepository persists tasks and their owned collections. Every
// multi-row write runs in one transaction so a task update is applied
// atomically: derived price/paid are recomputed in the same transaction that
// replaces line items or workers, and the daily id sequence is allocated
// under a range lock.
type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID             uint64         `db:"id"`
	Customer       string         `db:"customer"`
	VehiclePlateNo string         `db:"vehicle_plate_no"`
	VehicleMake    string         `db:"vehicle_make"`
	VehicleModel   string         `db:"vehicle_model"`
	Description    sql.NullString `db:"description"`
	Status         string         `db:"status"`
	Price          float64        `db:"price"`
	Paid           float64        `db:"paid"`
	CompletedAt    sql.NullTime   `db:"completed_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type lineItemRow struct {
	ID          uint64  `db:"id"`
	TaskID      uint64  `db:"task_id"`
	Description string  `db:"description"`
	Amount      float64 `db:"amount"`
}

type taskWorkerRow struct {
	ID     uint64  `db:"id"`
	TaskID uint64  `db:"task_id"`
	Name   string  `db:"name"`
	Wage   float64 `db:"wage"`
	Paid   bool    `db:"paid"`
}

type statusChangeRow struct {
	TaskID     uint64         `db:"task_id"`
	Status     string         `db:"status"`
	FromStatus sql.NullString `db:"from_status"`
	Timestamp  time.Time      `db:"timestamp"`
}

type taskEventRow struct {
	TaskID        uint64         `db:"task_id"`
	Type          string         `db:"type"`
	Timestamp     time.Time      `db:"timestamp"`
	InvoiceNumber sql.NullString `db:"invoice_number"`
}

type photoRow struct {
	TaskID   uint64 `db:"task_id"`
	FileID   string `db:"file_id"`
	FileName string `db:"file_name"`
	URL      string `db:"url"`
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM tasks ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := loadTaskChildren(ctx, r.db, mapTaskRow(row))
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return getTask(ctx, r.db, id)
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().Truncate(time.Millisecond)

	// Lock the day's id range so concurrent creates serialize on the
	// sequence derivation.
	lo, hi := domain.TaskIDRange(now)
	var maxExisting uint64
	if err := tx.GetContext(ctx, &maxExisting,
		`SELECT COALESCE(MAX(id), 0) FROM tasks WHERE id BETWEEN ? AND ? FOR UPDATE`, lo, hi); err != nil {
		return domain.Task{}, err
	}

	id, err := domain.NextTaskID(now, maxExisting)
	if err != nil {
		return domain.Task{}, err
	}

	price := domain.SumLineItems(input.LineItems)
	paid := domain.SumWages(input.Workers)

	_, err = tx.ExecContext(ctx, `
INSERT INTO tasks (id, customer, vehicle_plate_no, vehicle_make, vehicle_model, description,
                   status, price, paid, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Customer, input.VehiclePlateNo, input.VehicleMake, input.VehicleModel,
		nullString(input.Description), string(domain.TaskStatusTodo), price, paid, now, now)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Task{}, domain.ErrDuplicateTaskID
		}
		return domain.Task{}, err
	}

	if err := insertLineItems(ctx, tx, id, input.LineItems); err != nil {
		return domain.Task{}, err
	}
	if err := insertWorkers(ctx, tx, id, input.Workers); err != nil {
		return domain.Task{}, err
	}
	for _, p := range input.Photos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO photos (task_id, file_id, file_name, url) VALUES (?, ?, ?, ?)`,
			id, p.FileID, p.FileName, p.URL); err != nil {
			return domain.Task{}, err
		}
	}

	// First audit entry: no from_status, timestamp == created_at.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO status_history (task_id, status, from_status, timestamp) VALUES (?, ?, NULL, ?)`,
		id, string(domain.TaskStatusTodo), now); err != nil {
		return domain.Task{}, err
	}

	task, err := getTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var current taskRow
	if err := tx.GetContext(ctx, &current, `SELECT * FROM tasks WHERE id = ? FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	now := time.Now().Truncate(time.Millisecond)
	next := current

	if input.Customer != nil {
		next.Customer = *input.Customer
	}
	if input.VehiclePlateNo != nil {
		next.VehiclePlateNo = *input.VehiclePlateNo
	}
	if input.VehicleMake != nil {
		next.VehicleMake = *input.VehicleMake
	}
	if input.VehicleModel != nil {
		next.VehicleModel = *input.VehicleModel
	}
	if input.DescriptionSet {
		next.Description = nullString(input.Description)
	}

	if input.Status != nil && string(*input.Status) != current.Status {
		next.Status = string(*input.Status)

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO status_history (task_id, status, from_status, timestamp) VALUES (?, ?, ?, ?)`,
			id, next.Status, current.Status, now); err != nil {
			return domain.Task{}, err
		}

		if *input.Status == domain.TaskStatusDone {
			next.CompletedAt = sql.NullTime{Time: now, Valid: true}
		} else if current.Status == string(domain.TaskStatusDone) {
			next.CompletedAt = sql.NullTime{}
		}
	}

	if input.LineItemsSet {
		if _, err := tx.ExecContext(ctx, `DELETE FROM line_items WHERE task_id = ?`, id); err != nil {
			return domain.Task{}, err
		}
		if err := insertLineItems(ctx, tx, id, input.LineItems); err != nil {
			return domain.Task{}, err
		}
		next.Price = domain.SumLineItems(input.LineItems)
	}

	if input.WorkersSet {
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_workers WHERE task_id = ?`, id); err != nil {
			return domain.Task{}, err
		}
		if err := insertWorkers(ctx, tx, id, input.Workers); err != nil {
			return domain.Task{}, err
		}
		next.Paid = domain.SumWages(input.Workers)
	}

	_, err = tx.ExecContext(ctx, `
UPDATE tasks
SET customer = ?, vehicle_plate_no = ?, vehicle_make = ?, vehicle_model = ?, description = ?,
    status = ?, price = ?, paid = ?, completed_at = ?, updated_at = ?
WHERE id = ?`,
		next.Customer, next.VehiclePlateNo, next.VehicleMake, next.VehicleModel, next.Description,
		next.Status, next.Price, next.Paid, next.CompletedAt, now, id)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := getTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	// Owned rows (line items, workers, history, events, photos) cascade.
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) AppendTaskEvent(ctx context.Context, id uint64, event domain.TaskEventInput) (domain.Task, error) {
	// Append-only: the task row itself is untouched. The foreign key stands in
	// for an existence check, so a task deleted concurrently still maps to
	// not-found rather than a storage error.
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO task_events (task_id, type, timestamp, invoice_number) VALUES (?, ?, ?, ?)`,
		id, string(event.Type), event.Timestamp.Truncate(time.Millisecond), nullString(event.InvoiceNumber)); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return getTask(ctx, r.db, id)
}

func getTask(ctx context.Context, q sqlx.ExtContext, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, `SELECT * FROM tasks WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return loadTaskChildren(ctx, q, mapTaskRow(row))
}

func loadTaskChildren(ctx context.Context, q sqlx.ExtContext, task domain.Task) (domain.Task, error) {
	var items []lineItemRow
	if err := sqlx.SelectContext(ctx, q, &items,
		`SELECT * FROM line_items WHERE task_id = ? ORDER BY id`, task.ID); err != nil {
		return domain.Task{}, err
	}
	task.LineItems = make([]domain.LineItem, 0, len(items))
	for _, li := range items {
		task.LineItems = append(task.LineItems, domain.LineItem{ID: li.ID, Description: li.Description, Amount: li.Amount})
	}

	var workers []taskWorkerRow
	if err := sqlx.SelectContext(ctx, q, &workers,
		`SELECT * FROM task_workers WHERE task_id = ? ORDER BY id`, task.ID); err != nil {
		return domain.Task{}, err
	}
	task.Workers = make([]domain.TaskWorker, 0, len(workers))
	for _, w := range workers {
		task.Workers = append(task.Workers, domain.TaskWorker{ID: w.ID, Name: w.Name, Wage: w.Wage, Paid: w.Paid})
	}

	var history []statusChangeRow
	if err := sqlx.SelectContext(ctx, q, &history,
		`SELECT task_id, status, from_status, timestamp FROM status_history WHERE task_id = ? ORDER BY timestamp, id`, task.ID); err != nil {
		return domain.Task{}, err
	}
	task.StatusHistory = make([]domain.StatusChange, 0, len(history))
	for _, h := range history {
		change := domain.StatusChange{Status: domain.TaskStatus(h.Status), Timestamp: h.Timestamp}
		if h.FromStatus.Valid {
			from := domain.TaskStatus(h.FromStatus.String)
			change.FromStatus = &from
		}
		task.StatusHistory = append(task.StatusHistory, change)
	}

	var events []taskEventRow
	if err := sqlx.SelectContext(ctx, q, &events,
		`SELECT task_id, type, timestamp, invoice_number FROM task_events WHERE task_id = ? ORDER BY timestamp, id`, task.ID); err != nil {
		return domain.Task{}, err
	}
	task.Events = make([]domain.TaskEvent, 0, len(events))
	for _, e := range events {
		event := domain.TaskEvent{Type: domain.TaskEventType(e.Type), Timestamp: e.Timestamp}
		if e.InvoiceNumber.Valid {
			number := e.InvoiceNumber.String
			event.InvoiceNumber = &number
		}
		task.Events = append(task.Events, event)
	}

	var photos []photoRow
	if err := sqlx.SelectContext(ctx, q, &photos,
		`SELECT task_id, file_id, file_name, url FROM photos WHERE task_id = ? ORDER BY id`, task.ID); err != nil {
		return domain.Task{}, err
	}
	task.Photos = make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		task.Photos = append(task.Photos, domain.Photo{FileID: p.FileID, FileName: p.FileName, URL: p.URL})
	}

	return task, nil
}

func insertLineItems(ctx context.Context, tx *sqlx.Tx, taskID uint64, items []domain.LineItemInput) error {
	for _, li := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO line_items (task_id, description, amount) VALUES (?, ?, ?)`,
			taskID, li.Description, li.Amount); err != nil {
			return err
		}
	}
	return nil
}

func insertWorkers(ctx context.Context, tx *sqlx.Tx, taskID uint64, workers []domain.WorkerInput) error {
	for _, w := range workers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_workers (task_id, name, wage, paid) VALUES (?, ?, ?, ?)`,
			taskID, w.Name, w.Wage, w.Paid); err != nil {
			return err
		}
	}
	return nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		Customer:       row.Customer,
		VehiclePlateNo: row.VehiclePlateNo,
		VehicleMake:    row.VehicleMake,
		VehicleModel:   row.VehicleModel,
		Status:         domain.TaskStatus(row.Status),
		Price:          row.Price,
		Paid:           row.Paid,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
