package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrTemplateNotFound = errors.New("line item template not found")
	ErrPhotoNotFound    = errors.New("photo not found")

	// ErrInvalidInput covers malformed or missing required input. Never
	// retried; surfaced to the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNameTaken is a unique-field collision; the caller must pick another
	// value.
	ErrNameTaken = errors.New("name already taken")

	// ErrDuplicateTaskID means the computed daily-sequence id collided, which
	// only happens if sequence allocation was not serialized.
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrDailySequenceFull means 99 tasks already exist for the day; the
	// two-digit sequence of the id format cannot go further.
	ErrDailySequenceFull = errors.New("daily task sequence exhausted")
)
