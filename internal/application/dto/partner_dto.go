package dto

import "time"

// CreatePartnerRequest entrada para crear un tercero.
type CreatePartnerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Type    string `json:"type" validate:"required,oneof=vendor customer"`
	Contact string `json:"contact"`
}

// UpdatePartnerRequest entrada para actualizar un tercero.
type UpdatePartnerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Type    *string `json:"type" validate:"omitempty,oneof=vendor customer"`
	Contact *string `json:"contact"`
}

// PartnerResponse salida de un tercero.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartnerListResponse lista paginada de terceros.
type PartnerListResponse struct {
	Items []PartnerResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
