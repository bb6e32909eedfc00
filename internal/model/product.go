// internal/model/product.go
package model

import "time"

type Product struct {
	ID             int       `db:"id" json:"id"`
	SponsorID      int       `db:"sponsor_id" json:"sponsor_id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description"`
	Category       string    `db:"category" json:"category"`
	TargetAudience *string   `db:"target_audience" json:"target_audience"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreateProductInput struct {
	SponsorID      int     `json:"sponsor_id" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required,min=1"`
	Description    *string `json:"description"`
	Category       string  `json:"category" validate:"required,min=1"`
	TargetAudience *string `json:"target_audience"`
}

type UpdateProductInput struct {
	ID             int              `json:"id" validate:"required,gt=0"`
	Name           *string          `json:"name" validate:"omitempty,min=1"`
	Description    Nullable[string] `json:"description"`
	Category       *string          `json:"category" validate:"omitempty,min=1"`
	TargetAudience Nullable[string] `json:"target_audience"`
}
