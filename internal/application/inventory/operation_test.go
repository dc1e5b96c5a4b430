package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	appinv "github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testOperatorID = "00000000-0000-0000-0000-0000000000aa"

// dec parsea un decimal literal de test.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// seedProduct crea un producto en el estado fake y devuelve su id.
func seedProduct(t *testing.T, s *memStore, sku string) string {
	t.Helper()
	id := uuid.New().String()
	err := (&fakeProductRepo{s: s}).Create(&entity.Product{
		ID:   id,
		Name: "Producto " + sku,
		SKU:  sku,
		UOM:  "unit",
	})
	require.NoError(t, err)
	return id
}

// seedLocation crea una ubicación interna, opcionalmente en una bodega.
func seedLocation(t *testing.T, s *memStore, name, warehouseID string) string {
	t.Helper()
	id := uuid.New().String()
	err := (&fakeLocationRepo{s: s}).Create(&entity.Location{
		ID:          id,
		Name:        name,
		Type:        entity.LocationTypeInternal,
		WarehouseID: warehouseID,
	})
	require.NoError(t, err)
	return id
}

// seedMove inserta un move ya hecho directamente en el ledger fake.
func seedMove(t *testing.T, s *memStore, productID, sourceLocID, destLocID, qty string) {
	t.Helper()
	err := (&fakeMoveRepo{s: s}).Create(context.Background(), &entity.StockMove{
		ID:          uuid.New().String(),
		ProductID:   productID,
		SourceLocID: sourceLocID,
		DestLocID:   destLocID,
		Quantity:    dec(t, qty),
		Date:        time.Now(),
	})
	require.NoError(t, err)
}

// createOperation crea una operación vía el caso de uso y la devuelve.
func createOperation(t *testing.T, uc *appinv.OperationUseCase, in dto.CreateOperationRequest) *dto.OperationResponse {
	t.Helper()
	op, err := uc.Create(context.Background(), testOperatorID, in)
	require.NoError(t, err)
	require.NotNil(t, op)
	return op
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear genera la referencia secuencial por tipo y deja la operación en draft.
func TestCreate_GeneraReferenciaYQuedaEnDraft(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		DestLocID:     stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "50")}},
	})

	assert.Equal(t, "receipt/0001", op.Reference)
	assert.Equal(t, entity.OperationStatusDraft, op.Status)
	require.Len(t, op.Lines, 1)
	assert.True(t, op.Lines[0].DemandQty.Equal(dec(t, "50")))
	assert.True(t, op.Lines[0].DoneQty.IsZero(), "una línea nueva no tiene cantidad hecha")

	// La secuencia es por tipo: otro receipt sigue en 0002, un delivery arranca en 0001.
	op2 := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		DestLocID:     stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "10")}},
	})
	assert.Equal(t, "receipt/0002", op2.Reference)

	op3 := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeDelivery,
		SourceLocID:   stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "5")}},
	})
	assert.Equal(t, "delivery/0001", op3.Reference)
}

// Caso 2: entradas inválidas se rechazan sin persistir nada.
func TestCreate_RechazaEntradasInvalidas(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")

	// Tipo desconocido
	_, err := uc.Create(context.Background(), testOperatorID, dto.CreateOperationRequest{
		OperationType: "teleport",
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "1")}},
	})
	assert.Equal(t, domain.ErrInvalidInput, err)

	// Sin líneas
	_, err = uc.Create(context.Background(), testOperatorID, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
	})
	assert.Equal(t, domain.ErrInvalidInput, err)

	// Demanda no positiva
	_, err = uc.Create(context.Background(), testOperatorID, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "0")}},
	})
	assert.Equal(t, domain.ErrInvalidInput, err)

	// Producto inexistente
	_, err = uc.Create(context.Background(), testOperatorID, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		Lines:         []dto.OperationLineRequest{{ProductID: uuid.New().String(), DemandQty: dec(t, "1")}},
	})
	assert.Equal(t, domain.ErrNotFound, err)

	assert.Empty(t, s.ops, "ninguna operación debe quedar persistida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CheckAvailability
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: hay stock suficiente en el origen → ready.
func TestCheckAvailability_StockSuficiente_Ready(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	// 100 unidades recibidas en Stock
	seedMove(t, s, productID, "", stockID, "100")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeDelivery,
		SourceLocID:   stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "100")}},
	})

	res, err := uc.CheckAvailability(context.Background(), op.ID)
	require.NoError(t, err)
	assert.True(t, res.Ready)
	assert.Contains(t, res.Message, "Product TOR-M8: available 100 >= demand 100")

	// El nuevo estado debe quedar persistido
	got, err := uc.GetByID(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationStatusReady, got.Status)
}

// Caso 2: otra operación en vuelo reserva parte del stock → waiting con diagnóstico.
func TestCheckAvailability_DemandaEnVuelo_Waiting(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	seedMove(t, s, productID, "", stockID, "100")

	// Dos deliveries en draft de 60 cada una compiten por las mismas 100 unidades
	mk := func() *dto.OperationResponse {
		return createOperation(t, uc, dto.CreateOperationRequest{
			OperationType: entity.OperationTypeDelivery,
			SourceLocID:   stockID,
			Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "60")}},
		})
	}
	opA, opB := mk(), mk()

	resA, err := uc.CheckAvailability(context.Background(), opA.ID)
	require.NoError(t, err)
	assert.False(t, resA.Ready, "100 en mano - 60 en vuelo no alcanza para 60")
	assert.Contains(t, resA.Message, "Product TOR-M8: available 40 < demand 60")

	gotA, err := uc.GetByID(context.Background(), opA.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationStatusWaiting, gotA.Status)

	// La otra ve el mismo panorama simétrico
	resB, err := uc.CheckAvailability(context.Background(), opB.ID)
	require.NoError(t, err)
	assert.False(t, resB.Ready)
}

// Caso 3: la verificación es re-ejecutable; cuando llega stock pasa de waiting a ready.
func TestCheckAvailability_EsRepetible(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeDelivery,
		SourceLocID:   stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "30")}},
	})

	res, err := uc.CheckAvailability(context.Background(), op.ID)
	require.NoError(t, err)
	assert.False(t, res.Ready, "sin stock no puede quedar ready")

	// Llega una recepción de 30
	seedMove(t, s, productID, "", stockID, "30")

	res, err = uc.CheckAvailability(context.Background(), op.ID)
	require.NoError(t, err)
	assert.True(t, res.Ready, "la última verificación gana")

	got, err := uc.GetByID(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationStatusReady, got.Status)
}

// Caso 4: sin ubicación origen no hay contra qué verificar.
func TestCheckAvailability_SinOrigenFalla(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		DestLocID:     stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "10")}},
	})

	_, err := uc.CheckAvailability(context.Background(), op.ID)
	assert.Equal(t, domain.ErrNoSourceLocation, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: validar un traslado interno crea un move por línea, cumple la demanda,
// deja la operación en done y refresca caché y auditoría en ambos lados.
func TestValidate_CreaMovesYQuedaDone(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")
	despachoID := seedLocation(t, s, "Despacho", "")

	seedMove(t, s, productID, "", stockID, "100")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeInternal,
		SourceLocID:   stockID,
		DestLocID:     despachoID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "40")}},
	})

	res, err := uc.Validate(context.Background(), op.ID, testOperatorID)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "Created 1 stock moves", res.Message)

	// Un move nuevo por la cantidad pendiente completa
	require.Len(t, s.moves, 2, "la recepción sembrada más el move de la validación")
	mv := s.moves[1]
	assert.Equal(t, stockID, mv.SourceLocID)
	assert.Equal(t, despachoID, mv.DestLocID)
	assert.True(t, mv.Quantity.Equal(dec(t, "40")))
	assert.Equal(t, op.ID, mv.OperationID)

	// La línea quedó cumplida por completo y la operación en done
	got, err := uc.GetByID(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationStatusDone, got.Status)
	require.Len(t, got.Lines, 1)
	assert.True(t, got.Lines[0].DoneQty.Equal(got.Lines[0].DemandQty))

	// Caché de quants refrescada en ambos lados con el stock derivado
	qSrc := s.quants[quantKey(productID, stockID)]
	require.NotNil(t, qSrc)
	assert.True(t, qSrc.Quantity.Equal(dec(t, "60")), "100 recibidas - 40 trasladadas")
	qDst := s.quants[quantKey(productID, despachoID)]
	require.NotNil(t, qDst)
	assert.True(t, qDst.Quantity.Equal(dec(t, "40")))

	// Auditoría: una entrada por lado, con signo y cantidad resultante
	require.Len(t, s.ledger, 2)
	assert.True(t, s.ledger[0].ChangeQty.Equal(dec(t, "-40")))
	assert.True(t, s.ledger[0].ResultingQty.Equal(dec(t, "60")))
	assert.Equal(t, stockID, s.ledger[0].LocationID)
	assert.True(t, s.ledger[1].ChangeQty.Equal(dec(t, "40")))
	assert.True(t, s.ledger[1].ResultingQty.Equal(dec(t, "40")))
	assert.Equal(t, despachoID, s.ledger[1].LocationID)
	assert.Equal(t, op.Reference, s.ledger[0].Reason)
	assert.Equal(t, testOperatorID, s.ledger[0].PerformedByID)
}

// Caso 2: una recepción (sin origen) solo toca el lado destino.
func TestValidate_RecepcionSoloLadoDestino(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "PIN-BL-1G")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		DestLocID:     stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "25")}},
	})

	res, err := uc.Validate(context.Background(), op.ID, testOperatorID)
	require.NoError(t, err)
	assert.True(t, res.OK)

	require.Len(t, s.ledger, 1, "solo el lado interno genera auditoría")
	assert.Equal(t, stockID, s.ledger[0].LocationID)
	assert.True(t, s.ledger[0].ChangeQty.Equal(dec(t, "25")))
	assert.True(t, s.ledger[0].ResultingQty.Equal(dec(t, "25")))
}

// Caso 3: done es terminal; revalidar falla sin crear moves nuevos.
func TestValidate_OperacionDoneEsTerminal(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeReceipt,
		DestLocID:     stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "10")}},
	})

	_, err := uc.Validate(context.Background(), op.ID, testOperatorID)
	require.NoError(t, err)
	movesAfterFirst := len(s.moves)

	_, err = uc.Validate(context.Background(), op.ID, testOperatorID)
	assert.Equal(t, domain.ErrOperationDone, err)
	assert.Len(t, s.moves, movesAfterFirst, "revalidar no debe crear moves")
}

// Caso 4: validar no re-verifica disponibilidad; el stock derivado puede quedar negativo.
func TestValidate_SinDisponibilidadDejaStockNegativo(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewOperationUseCase(&fakeTxRunner{s: s})
	productID := seedProduct(t, s, "CAB-12AWG")
	stockID := seedLocation(t, s, "Stock", "")

	op := createOperation(t, uc, dto.CreateOperationRequest{
		OperationType: entity.OperationTypeDelivery,
		SourceLocID:   stockID,
		Lines:         []dto.OperationLineRequest{{ProductID: productID, DemandQty: dec(t, "15")}},
	})

	res, err := uc.Validate(context.Background(), op.ID, testOperatorID)
	require.NoError(t, err)
	assert.True(t, res.OK)

	q := s.quants[quantKey(productID, stockID)]
	require.NotNil(t, q)
	assert.True(t, q.Quantity.Equal(dec(t, "-15")), "el negativo queda visible en la caché")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockUseCase — stock derivado
// ──────────────────────────────────────────────────────────────────────────────

// El stock en mano se deriva del ledger de moves, por ubicación o global.
func TestCurrentStock_DerivadoDelLedger(t *testing.T) {
	s := newMemStore()
	productID := seedProduct(t, s, "TOR-M8")
	stockID := seedLocation(t, s, "Stock", "")
	despachoID := seedLocation(t, s, "Despacho", "")

	seedMove(t, s, productID, "", stockID, "100")       // recepción
	seedMove(t, s, productID, stockID, despachoID, "30") // traslado interno
	seedMove(t, s, productID, despachoID, "", "10")      // entrega

	uc := appinv.NewStockUseCase(&fakeMoveRepo{s: s}, &fakeProductRepo{s: s})

	res, err := uc.CurrentStock(context.Background(), productID, stockID)
	require.NoError(t, err)
	assert.True(t, res.Quantity.Equal(dec(t, "70")))

	res, err = uc.CurrentStock(context.Background(), productID, despachoID)
	require.NoError(t, err)
	assert.True(t, res.Quantity.Equal(dec(t, "20")))

	// Global: el traslado interno se compensa solo; queda 100 - 10
	res, err = uc.CurrentStock(context.Background(), productID, "")
	require.NoError(t, err)
	assert.True(t, res.Quantity.Equal(dec(t, "90")))

	// Producto inexistente
	_, err = uc.CurrentStock(context.Background(), uuid.New().String(), "")
	assert.Equal(t, domain.ErrNotFound, err)
}
