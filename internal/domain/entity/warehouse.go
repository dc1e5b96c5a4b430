package entity

import "time"

// Warehouse representa una bodega física; agrupa ubicaciones internas.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
