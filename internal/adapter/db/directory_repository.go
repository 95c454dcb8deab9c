package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

// Directory repositories back the UI's selectors: customers, workers and
// line-item templates. Names carry a unique index; collisions surface as
// domain.ErrNameTaken.

type CustomerRepository struct {
	db *sqlx.DB
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerRow struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Phone     sql.NullString `db:"phone"`
	Email     sql.NullString `db:"email"`
	Address   sql.NullString `db:"address"`
	Notes     sql.NullString `db:"notes"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM customers ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, mapCustomerRow(row))
	}
	return customers, nil
}

func (r *CustomerRepository) GetCustomer(ctx context.Context, id uint64) (domain.Customer, error) {
	var row customerRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM customers WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}
	return mapCustomerRow(row), nil
}

func (r *CustomerRepository) GetCustomerByName(ctx context.Context, name string) (domain.Customer, error) {
	var row customerRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM customers WHERE LOWER(name) = LOWER(?)`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}
	return mapCustomerRow(row), nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, input domain.CustomerInput) (domain.Customer, error) {
	now := time.Now().Truncate(time.Millisecond)
	result, err := r.db.ExecContext(ctx, `
INSERT INTO customers (name, phone, email, address, notes, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Name, nullString(input.Phone), nullString(input.Email), nullString(input.Address),
		nullString(input.Notes), boolOrDefault(input.IsActive, true), now, now)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Customer{}, domain.ErrNameTaken
		}
		return domain.Customer{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Customer{}, err
	}
	return r.GetCustomer(ctx, uint64(id))
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, id uint64, input domain.CustomerInput) (domain.Customer, error) {
	current, err := r.GetCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	name := current.Name
	if input.Name != "" {
		name = input.Name
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE customers SET name = ?, phone = ?, email = ?, address = ?, notes = ?, is_active = ?, updated_at = ?
WHERE id = ?`,
		name, nullString(input.Phone), nullString(input.Email), nullString(input.Address),
		nullString(input.Notes), boolOrDefault(input.IsActive, current.IsActive),
		time.Now().Truncate(time.Millisecond), id)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Customer{}, domain.ErrNameTaken
		}
		return domain.Customer{}, err
	}
	return r.GetCustomer(ctx, id)
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

type WorkerRepository struct {
	db *sqlx.DB
}

var _ ports.WorkerRepository = (*WorkerRepository)(nil)

func NewWorkerRepository(db *sqlx.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

type workerRow struct {
	ID         uint64         `db:"id"`
	Name       string         `db:"name"`
	Phone      sql.NullString `db:"phone"`
	Email      sql.NullString `db:"email"`
	Address    sql.NullString `db:"address"`
	HourlyRate float64        `db:"hourly_rate"`
	Notes      sql.NullString `db:"notes"`
	IsActive   bool           `db:"is_active"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *WorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	var rows []workerRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM workers ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	workers := make([]domain.Worker, 0, len(rows))
	for _, row := range rows {
		workers = append(workers, mapWorkerRow(row))
	}
	return workers, nil
}

func (r *WorkerRepository) GetWorker(ctx context.Context, id uint64) (domain.Worker, error) {
	var row workerRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM workers WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Worker{}, domain.ErrWorkerNotFound
		}
		return domain.Worker{}, err
	}
	return mapWorkerRow(row), nil
}

func (r *WorkerRepository) GetWorkerByName(ctx context.Context, name string) (domain.Worker, error) {
	var row workerRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM workers WHERE LOWER(name) = LOWER(?)`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Worker{}, domain.ErrWorkerNotFound
		}
		return domain.Worker{}, err
	}
	return mapWorkerRow(row), nil
}

func (r *WorkerRepository) CreateWorker(ctx context.Context, input domain.WorkerDirectoryInput) (domain.Worker, error) {
	now := time.Now().Truncate(time.Millisecond)
	rate := 0.0
	if input.HourlyRate != nil {
		rate = *input.HourlyRate
	}
	result, err := r.db.ExecContext(ctx, `
INSERT INTO workers (name, phone, email, address, hourly_rate, notes, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Name, nullString(input.Phone), nullString(input.Email), nullString(input.Address),
		rate, nullString(input.Notes), boolOrDefault(input.IsActive, true), now, now)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Worker{}, domain.ErrNameTaken
		}
		return domain.Worker{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Worker{}, err
	}
	return r.GetWorker(ctx, uint64(id))
}

func (r *WorkerRepository) UpdateWorker(ctx context.Context, id uint64, input domain.WorkerDirectoryInput) (domain.Worker, error) {
	current, err := r.GetWorker(ctx, id)
	if err != nil {
		return domain.Worker{}, err
	}

	name := current.Name
	if input.Name != "" {
		name = input.Name
	}
	rate := current.HourlyRate
	if input.HourlyRate != nil {
		rate = *input.HourlyRate
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE workers SET name = ?, phone = ?, email = ?, address = ?, hourly_rate = ?, notes = ?, is_active = ?, updated_at = ?
WHERE id = ?`,
		name, nullString(input.Phone), nullString(input.Email), nullString(input.Address),
		rate, nullString(input.Notes), boolOrDefault(input.IsActive, current.IsActive),
		time.Now().Truncate(time.Millisecond), id)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Worker{}, domain.ErrNameTaken
		}
		return domain.Worker{}, err
	}
	return r.GetWorker(ctx, id)
}

func (r *WorkerRepository) DeleteWorker(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

type LineItemTemplateRepository struct {
	db *sqlx.DB
}

var _ ports.LineItemTemplateRepository = (*LineItemTemplateRepository)(nil)

func NewLineItemTemplateRepository(db *sqlx.DB) *LineItemTemplateRepository {
	return &LineItemTemplateRepository{db: db}
}

type templateRow struct {
	ID          uint64         `db:"id"`
	Description string         `db:"description"`
	Category    sql.NullString `db:"category"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *LineItemTemplateRepository) ListTemplates(ctx context.Context) ([]domain.LineItemTemplate, error) {
	var rows []templateRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM line_item_templates ORDER BY description`); err != nil {
		return nil, err
	}
	templates := make([]domain.LineItemTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, mapTemplateRow(row))
	}
	return templates, nil
}

func (r *LineItemTemplateRepository) GetTemplate(ctx context.Context, id uint64) (domain.LineItemTemplate, error) {
	var row templateRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM line_item_templates WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LineItemTemplate{}, domain.ErrTemplateNotFound
		}
		return domain.LineItemTemplate{}, err
	}
	return mapTemplateRow(row), nil
}

func (r *LineItemTemplateRepository) GetTemplateByDescription(ctx context.Context, description string) (domain.LineItemTemplate, error) {
	var row templateRow
	if err := r.db.GetContext(ctx, &row,
		`SELECT * FROM line_item_templates WHERE LOWER(description) = LOWER(?)`, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LineItemTemplate{}, domain.ErrTemplateNotFound
		}
		return domain.LineItemTemplate{}, err
	}
	return mapTemplateRow(row), nil
}

func (r *LineItemTemplateRepository) CreateTemplate(ctx context.Context, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error) {
	now := time.Now().Truncate(time.Millisecond)
	result, err := r.db.ExecContext(ctx, `
INSERT INTO line_item_templates (description, category, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		input.Description, nullString(input.Category), boolOrDefault(input.IsActive, true), now, now)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.LineItemTemplate{}, domain.ErrNameTaken
		}
		return domain.LineItemTemplate{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.LineItemTemplate{}, err
	}
	return r.GetTemplate(ctx, uint64(id))
}

func (r *LineItemTemplateRepository) UpdateTemplate(ctx context.Context, id uint64, input domain.LineItemTemplateInput) (domain.LineItemTemplate, error) {
	current, err := r.GetTemplate(ctx, id)
	if err != nil {
		return domain.LineItemTemplate{}, err
	}

	description := current.Description
	if input.Description != "" {
		description = input.Description
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE line_item_templates SET description = ?, category = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		description, nullString(input.Category), boolOrDefault(input.IsActive, current.IsActive),
		time.Now().Truncate(time.Millisecond), id)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.LineItemTemplate{}, domain.ErrNameTaken
		}
		return domain.LineItemTemplate{}, err
	}
	return r.GetTemplate(ctx, id)
}

func (r *LineItemTemplateRepository) DeleteTemplate(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM line_item_templates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func mapCustomerRow(row customerRow) domain.Customer {
	return domain.Customer{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     optionalString(row.Phone),
		Email:     optionalString(row.Email),
		Address:   optionalString(row.Address),
		Notes:     optionalString(row.Notes),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapWorkerRow(row workerRow) domain.Worker {
	return domain.Worker{
		ID:         row.ID,
		Name:       row.Name,
		Phone:      optionalString(row.Phone),
		Email:      optionalString(row.Email),
		Address:    optionalString(row.Address),
		HourlyRate: row.HourlyRate,
		Notes:      optionalString(row.Notes),
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapTemplateRow(row templateRow) domain.LineItemTemplate {
	return domain.LineItemTemplate{
		ID:          row.ID,
		Description: row.Description,
		Category:    optionalString(row.Category),
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func optionalString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	result := value.String
	return &result
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
