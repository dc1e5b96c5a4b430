package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una operación.
// draft -> waiting/ready (verificación de disponibilidad, repetible) -> done (terminal).
const (
	OperationStatusDraft   = "draft"
	OperationStatusWaiting = "waiting"
	OperationStatusReady   = "ready"
	OperationStatusDone    = "done"
)

// Tipos de operación de stock.
const (
	OperationTypeReceipt    = "receipt"
	OperationTypeDelivery   = "delivery"
	OperationTypeInternal   = "internal"
	OperationTypeAdjustment = "adjustment"
)

// ValidOperationType informa si el tipo pertenece al conjunto permitido.
func ValidOperationType(t string) bool {
	switch t {
	case OperationTypeReceipt, OperationTypeDelivery, OperationTypeInternal, OperationTypeAdjustment:
		return true
	}
	return false
}

// StockOperation representa un movimiento planificado de productos entre dos
// ubicaciones (recepción, entrega, traslado interno o ajuste).
type StockOperation struct {
	ID            string
	Reference     string // único, formato "<tipo>/NNNN"
	OperationType string
	Status        string
	SourceLocID   string // vacío = sin origen (ej. recepción desde proveedor externo)
	DestLocID     string // vacío = sin destino
	PartnerID     string
	CreatedByID   string
	ScheduledDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Lines []StockOperationLine
}

// StockOperationLine es una línea de demanda de una operación.
// Invariante: 0 <= DoneQty <= DemandQty.
type StockOperationLine struct {
	ID          string
	OperationID string
	ProductID   string
	DemandQty   decimal.Decimal
	DoneQty     decimal.Decimal
}

// Remaining devuelve la demanda pendiente de la línea (DemandQty - DoneQty).
func (l StockOperationLine) Remaining() decimal.Decimal {
	return l.DemandQty.Sub(l.DoneQty)
}
