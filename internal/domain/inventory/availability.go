package inventory

import "github.com/shopspring/decimal"

// Available calcula la cantidad disponible para nueva demanda en una ubicación:
// stock en mano derivado del ledger menos la demanda pendiente de otras
// operaciones en vuelo (servicio de dominio, sin efectos).
func Available(onHand, reserved decimal.Decimal) decimal.Decimal {
	return onHand.Sub(reserved)
}

// Satisfiable informa si una línea con la demanda dada se puede cumplir
// con la cantidad disponible.
func Satisfiable(available, demand decimal.Decimal) bool {
	return available.GreaterThanOrEqual(demand)
}
