// internal/model/sponsor.go
package model

import "time"

type Sponsor struct {
	ID           int       `db:"id" json:"id"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	ContactPhone *string   `db:"contact_phone" json:"contact_phone"`
	Industry     string    `db:"industry" json:"industry"`
	Description  *string   `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateSponsorInput struct {
	CompanyName  string  `json:"company_name" validate:"required,min=1"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	ContactPhone *string `json:"contact_phone"`
	Industry     string  `json:"industry" validate:"required,min=1"`
	Description  *string `json:"description"`
}

type UpdateSponsorInput struct {
	ID           int              `json:"id" validate:"required,gt=0"`
	CompanyName  *string          `json:"company_name" validate:"omitempty,min=1"`
	ContactEmail *string          `json:"contact_email" validate:"omitempty,email"`
	ContactPhone Nullable[string] `json:"contact_phone"`
	Industry     *string          `json:"industry" validate:"omitempty,min=1"`
	Description  Nullable[string] `json:"description"`
}
