package domain

import "time"

// Customer is a directory record used by the UI to populate selectors.
// Names are unique.
type Customer struct {
	ID        uint64
	Name      string
	Phone     *string
	Email     *string
	Address   *string
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Worker is a directory record; HourlyRate backs the wage auto-fill when a
// worker is assigned to a task.
type Worker struct {
	ID         uint64
	Name       string
	Phone      *string
	Email      *string
	Address    *string
	HourlyRate float64
	Notes      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LineItemTemplate is a reusable charge description. Descriptions are unique.
type LineItemTemplate struct {
	ID          uint64
	Description string
	Category    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerInput struct {
	Name     string
	Phone    *string
	Email    *string
	Address  *string
	Notes    *string
	IsActive *bool
}

type WorkerDirectoryInput struct {
	Name       string
	Phone      *string
	Email      *string
	Address    *string
	HourlyRate *float64
	Notes      *string
	IsActive   *bool
}

type LineItemTemplateInput struct {
	Description string
	Category    *string
	IsActive    *bool
}
