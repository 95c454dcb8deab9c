package dto

type CustomerItem struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type CustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

type WorkerItem struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	HourlyRate float64 `json:"hourlyRate"`
	Notes      *string `json:"notes,omitempty"`
	IsActive   bool    `json:"isActive"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type WorkerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Phone      *string  `json:"phone"`
	Email      *string  `json:"email"`
	Address    *string  `json:"address"`
	HourlyRate *float64 `json:"hourlyRate"`
	Notes      *string  `json:"notes"`
	IsActive   *bool    `json:"isActive"`
}

type LineItemTemplateItem struct {
	ID          uint64  `json:"id"`
	Description string  `json:"description"`
	Category    *string `json:"category,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type LineItemTemplateRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}
