package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Type        string `json:"type" validate:"required,oneof=vendor customer internal inventory_loss"`
	WarehouseID string `json:"warehouse_id"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Type        *string `json:"type" validate:"omitempty,oneof=vendor customer internal inventory_loss"`
	WarehouseID *string `json:"warehouse_id"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
