package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemResponse is one catalog entry as exposed over HTTP. Money travels
// as a string to keep it exact.
type MenuItemResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           string    `json:"price"`
	Ingredients     []string  `json:"ingredients"`
	IsAvailable     bool      `json:"is_available"`
	PreparationTime *int      `json:"preparation_time"`
	ImageURL        string    `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateMenuItemRequest describes the create payload. Price accepts a JSON
// number or string.
type CreateMenuItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Ingredients     []string        `json:"ingredients"`
	IsAvailable     *bool           `json:"is_available"`
	PreparationTime *int            `json:"preparation_time"`
	ImageURL        string          `json:"image_url"`
}

// UpdateMenuItemRequest describes a partial update; absent fields keep their
// stored values.
type UpdateMenuItemRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category"`
	Price           *decimal.Decimal `json:"price"`
	Ingredients     []string         `json:"ingredients"`
	IsAvailable     *bool            `json:"is_available"`
	PreparationTime *int             `json:"preparation_time"`
	ImageURL        *string          `json:"image_url"`
}

// MessageResponse acknowledges operations without a body of their own.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error shape.
type ErrorResponse struct {
	Error string `json:"error"`
}
