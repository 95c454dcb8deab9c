package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

// InvoiceRepository persists invoices. Invoice numbers come from a single
// counter row bumped with MySQL's LAST_INSERT_ID(expr) idiom, which makes the
// increment-and-read atomic per connection: concurrent creations can never
// observe the same sequence value, and the sequence stays gapless.
type InvoiceRepository struct {
	db *sqlx.DB
}

var _ ports.InvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceRow struct {
	ID                  string          `db:"id"`
	TaskIDs             json.RawMessage `db:"task_ids"`
	CustomerName        string          `db:"customer_name"`
	TotalAmount         float64         `db:"total_amount"`
	TasksSnapshot       json.RawMessage `db:"tasks_snapshot"`
	PaymentReceived     bool            `db:"payment_received"`
	PaymentReceivedDate sql.NullTime    `db:"payment_received_date"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var rows []invoiceRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM invoices ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoice, err := mapInvoiceRow(row)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	var row invoiceRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM invoices WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Invoice{}, domain.ErrInvoiceNotFound
		}
		return domain.Invoice{}, err
	}
	return mapInvoiceRow(row)
}

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Invoice{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().Truncate(time.Millisecond)

	id, err := nextInvoiceNumber(ctx, tx, now)
	if err != nil {
		return domain.Invoice{}, err
	}

	taskIDs, err := json.Marshal(input.TaskIDs)
	if err != nil {
		return domain.Invoice{}, err
	}

	// The snapshot is stored verbatim; it is never recomputed from tasks.
	_, err = tx.ExecContext(ctx, `
INSERT INTO invoices (id, task_ids, customer_name, total_amount, tasks_snapshot,
                      payment_received, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, FALSE, ?, ?)`,
		id, taskIDs, input.CustomerName, input.TotalAmount, []byte(input.TasksSnapshot), now, now)
	if err != nil {
		return domain.Invoice{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Invoice{}, err
	}

	return domain.Invoice{
		ID:            id,
		TaskIDs:       input.TaskIDs,
		CustomerName:  input.CustomerName,
		TotalAmount:   input.TotalAmount,
		TasksSnapshot: input.TasksSnapshot,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Invoice{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var current invoiceRow
	if err := tx.GetContext(ctx, &current, `SELECT * FROM invoices WHERE id = ? FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Invoice{}, domain.ErrInvoiceNotFound
		}
		return domain.Invoice{}, err
	}

	now := time.Now().Truncate(time.Millisecond)
	next := current

	if input.PaymentReceived != nil {
		next.PaymentReceived = *input.PaymentReceived
	}
	if input.PaymentReceivedDateSet {
		if input.PaymentReceivedDate != nil {
			next.PaymentReceivedDate = sql.NullTime{Time: input.PaymentReceivedDate.Truncate(time.Millisecond), Valid: true}
		} else {
			next.PaymentReceivedDate = sql.NullTime{}
		}
	}

	_, err = tx.ExecContext(ctx, `
UPDATE invoices SET payment_received = ?, payment_received_date = ?, updated_at = ? WHERE id = ?`,
		next.PaymentReceived, next.PaymentReceivedDate, now, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	next.UpdatedAt = now

	if err := tx.Commit(); err != nil {
		return domain.Invoice{}, err
	}
	return mapInvoiceRow(next)
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	// Deliberately does not touch any task: the event-log annotation on
	// tasks is decoupled from invoice lifecycle.
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// nextInvoiceNumber bumps the global counter and renders the yyNNNN invoice
// id: two-digit issuance year plus the zero-padded global sequence. The
// sequence is global, not per-year; only the prefix changes at year end.
func nextInvoiceNumber(ctx context.Context, tx *sqlx.Tx, now time.Time) (string, error) {
	if _, err := tx.ExecContext(ctx,
		`UPDATE invoice_sequence SET value = LAST_INSERT_ID(value + 1) WHERE id = 1`); err != nil {
		return "", err
	}

	var seq uint64
	if err := tx.GetContext(ctx, &seq, `SELECT LAST_INSERT_ID()`); err != nil {
		return "", err
	}

	return fmt.Sprintf("%02d%04d", now.Year()%100, seq), nil
}

func mapInvoiceRow(row invoiceRow) (domain.Invoice, error) {
	invoice := domain.Invoice{
		ID:              row.ID,
		CustomerName:    row.CustomerName,
		TotalAmount:     row.TotalAmount,
		TasksSnapshot:   json.RawMessage(row.TasksSnapshot),
		PaymentReceived: row.PaymentReceived,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if err := json.Unmarshal(row.TaskIDs, &invoice.TaskIDs); err != nil {
		return domain.Invoice{}, err
	}
	if row.PaymentReceivedDate.Valid {
		value := row.PaymentReceivedDate.Time
		invoice.PaymentReceivedDate = &value
	}
	return invoice, nil
}
