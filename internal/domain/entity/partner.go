package entity

import "time"

// Tipos de tercero.
const (
	PartnerTypeVendor   = "vendor"
	PartnerTypeCustomer = "customer"
)

// ValidPartnerType informa si el tipo pertenece al conjunto permitido.
func ValidPartnerType(t string) bool {
	return t == PartnerTypeVendor || t == PartnerTypeCustomer
}

// Partner representa un tercero (proveedor o cliente) asociado a recepciones y entregas.
type Partner struct {
	ID        string
	Name      string
	Type      string // vendor | customer
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
