package entity

import "time"

// Tipos de ubicación en el grafo de stock. Las ubicaciones vendor/customer son
// nodos externos; internal son posiciones físicas dentro de una bodega.
const (
	LocationTypeVendor        = "vendor"
	LocationTypeCustomer      = "customer"
	LocationTypeInternal      = "internal"
	LocationTypeInventoryLoss = "inventory_loss"
)

// ValidLocationType informa si el tipo pertenece al conjunto permitido.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeVendor, LocationTypeCustomer, LocationTypeInternal, LocationTypeInventoryLoss:
		return true
	}
	return false
}

// Location representa un nodo del grafo de stock, opcionalmente agrupado en una bodega.
type Location struct {
	ID          string
	Name        string
	Type        string // ver constantes LocationType*
	WarehouseID string // vacío si no pertenece a una bodega
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
