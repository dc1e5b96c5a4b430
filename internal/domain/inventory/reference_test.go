package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/domain/inventory"
)

// dec parsea un decimal literal de test.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// Caso 1: sin referencia previa la secuencia arranca en 0001.
func TestNextReference_PrimeraDelTipo(t *testing.T) {
	assert.Equal(t, "receipt/0001", inventory.NextReference("receipt", ""))
	assert.Equal(t, "delivery/0001", inventory.NextReference("delivery", ""))
}

// Caso 2: la secuencia incrementa sobre la última referencia del tipo.
func TestNextReference_Incrementa(t *testing.T) {
	assert.Equal(t, "receipt/0002", inventory.NextReference("receipt", "receipt/0001"))
	assert.Equal(t, "receipt/0010", inventory.NextReference("receipt", "receipt/0009"))
	assert.Equal(t, "internal/0100", inventory.NextReference("internal", "internal/0099"))
}

// Caso 3: la secuencia pasa de 4 dígitos sin truncarse.
func TestNextReference_MasDeCuatroDigitos(t *testing.T) {
	assert.Equal(t, "receipt/10000", inventory.NextReference("receipt", "receipt/9999"))
}

// Caso 4: sufijo no numérico (dato legado o corrupto) reinicia en 0001.
func TestNextReference_SufijoInvalidoReinicia(t *testing.T) {
	assert.Equal(t, "receipt/0001", inventory.NextReference("receipt", "receipt/ABC"))
	assert.Equal(t, "receipt/0001", inventory.NextReference("receipt", "sin-separador"))
}

// La disponibilidad es stock en mano menos demanda en vuelo; una demanda que
// cabe exactamente en lo disponible se considera satisfacible.
func TestAvailableYSatisfiable(t *testing.T) {
	onHand := dec(t, "100")
	reserved := dec(t, "60")

	available := inventory.Available(onHand, reserved)
	assert.True(t, available.Equal(dec(t, "40")))

	assert.True(t, inventory.Satisfiable(available, dec(t, "40")), "demanda igual a lo disponible debe pasar")
	assert.False(t, inventory.Satisfiable(available, dec(t, "40.0001")), "demanda mayor a lo disponible no debe pasar")
}
