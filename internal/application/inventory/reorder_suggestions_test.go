package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// seedRule crea una regla de reorden en el estado fake y devuelve su id.
func seedRule(t *testing.T, s *memStore, productID, warehouseID, minQty, maxQty, reorderQty string) string {
	t.Helper()
	id := uuid.New().String()
	err := (&fakeReorderRuleRepo{s: s}).Create(&entity.ReorderRule{
		ID:          id,
		ProductID:   productID,
		WarehouseID: warehouseID,
		MinQty:      dec(t, minQty),
		MaxQty:      dec(t, maxQty),
		ReorderQty:  dec(t, reorderQty),
	})
	require.NoError(t, err)
	return id
}

// Caso 1: solo los productos bajo su mínimo generan sugerencia, ordenadas por
// mayor déficit, con la cantidad sugerida según la regla.
func TestGenerateSuggestions_BajoMinimoConPrioridad(t *testing.T) {
	s := newMemStore()
	stockID := seedLocation(t, s, "Stock", "")

	// Tornillos: 5 en mano, mínimo 20, reorder_qty fija de 100
	tornillos := seedProduct(t, s, "TOR-M8")
	seedMove(t, s, tornillos, "", stockID, "5")
	seedRule(t, s, tornillos, "", "20", "0", "100")

	// Pintura: 8 en mano, mínimo 10, sin reorder_qty pero con max_qty 50
	pintura := seedProduct(t, s, "PIN-BL-1G")
	seedMove(t, s, pintura, "", stockID, "8")
	seedRule(t, s, pintura, "", "10", "50", "0")

	// Cable: 100 en mano, mínimo 30 → no sugiere
	cable := seedProduct(t, s, "CAB-12AWG")
	seedMove(t, s, cable, "", stockID, "100")
	seedRule(t, s, cable, "", "30", "0", "0")

	uc := appinv.NewReorderSuggestionUseCase(
		&fakeReorderRuleRepo{s: s}, &fakeMoveRepo{s: s}, &fakeProductRepo{s: s})
	out, err := uc.GenerateSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Tornillos primero: déficit 15 contra 2 de la pintura
	assert.Equal(t, "TOR-M8", out[0].SKU)
	assert.Equal(t, 1, out[0].Priority)
	assert.True(t, out[0].CurrentStock.Equal(dec(t, "5")))
	assert.True(t, out[0].SuggestedQty.Equal(dec(t, "100")), "reorder_qty fija manda")

	assert.Equal(t, "PIN-BL-1G", out[1].SKU)
	assert.Equal(t, 2, out[1].Priority)
	assert.True(t, out[1].SuggestedQty.Equal(dec(t, "42")), "sin reorder_qty se llena hasta max_qty")
}

// Caso 2: sin max_qty ni reorder_qty se sugiere llegar justo al mínimo.
func TestGenerateSuggestions_SinMaxLlegaAlMinimo(t *testing.T) {
	s := newMemStore()
	stockID := seedLocation(t, s, "Stock", "")
	productID := seedProduct(t, s, "TOR-M8")
	seedMove(t, s, productID, "", stockID, "3")
	seedRule(t, s, productID, "", "20", "0", "0")

	uc := appinv.NewReorderSuggestionUseCase(
		&fakeReorderRuleRepo{s: s}, &fakeMoveRepo{s: s}, &fakeProductRepo{s: s})
	out, err := uc.GenerateSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].SuggestedQty.Equal(dec(t, "17")))
}

// Caso 3: una regla con bodega acota el stock a las ubicaciones de esa bodega.
func TestGenerateSuggestions_AcotadoPorBodega(t *testing.T) {
	s := newMemStore()
	bodegaA := uuid.New().String()
	bodegaB := uuid.New().String()
	locA := seedLocation(t, s, "A/Stock", bodegaA)
	locB := seedLocation(t, s, "B/Stock", bodegaB)

	productID := seedProduct(t, s, "TOR-M8")
	seedMove(t, s, productID, "", locA, "2")  // bodega A casi vacía
	seedMove(t, s, productID, "", locB, "80") // bodega B llena

	seedRule(t, s, productID, bodegaA, "10", "0", "0")

	uc := appinv.NewReorderSuggestionUseCase(
		&fakeReorderRuleRepo{s: s}, &fakeMoveRepo{s: s}, &fakeProductRepo{s: s})
	out, err := uc.GenerateSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1, "el stock de la bodega B no cuenta para la regla de A")
	assert.Equal(t, bodegaA, out[0].WarehouseID)
	assert.True(t, out[0].CurrentStock.Equal(dec(t, "2")))
}
