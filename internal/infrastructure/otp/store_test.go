package otp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/infrastructure/otp"
)

const testEmail = "bodega@stockmaster.test"

// Caso 1: un código guardado se recupera mientras no venza.
func TestStore_PutGet(t *testing.T) {
	s := otp.NewStore()
	s.Put(testEmail, "123456", time.Minute)

	code, ok := s.Get(testEmail)
	require.True(t, ok)
	assert.Equal(t, "123456", code)
}

// Caso 2: un código vencido desaparece.
func TestStore_Expira(t *testing.T) {
	s := otp.NewStore()
	s.Put(testEmail, "123456", 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get(testEmail)
	assert.False(t, ok, "un código vencido no debe recuperarse")
}

// Caso 3: un Put posterior reemplaza el código anterior.
func TestStore_Reemplaza(t *testing.T) {
	s := otp.NewStore()
	s.Put(testEmail, "111111", time.Minute)
	s.Put(testEmail, "222222", time.Minute)

	code, ok := s.Get(testEmail)
	require.True(t, ok)
	assert.Equal(t, "222222", code, "el último código gana")
}

// Caso 4: Delete consume el código.
func TestStore_Delete(t *testing.T) {
	s := otp.NewStore()
	s.Put(testEmail, "123456", time.Minute)
	s.Delete(testEmail)

	_, ok := s.Get(testEmail)
	assert.False(t, ok)
}

// Caso 5: emails distintos no se pisan.
func TestStore_PorEmail(t *testing.T) {
	s := otp.NewStore()
	s.Put("a@stockmaster.test", "111111", time.Minute)
	s.Put("b@stockmaster.test", "222222", time.Minute)

	codeA, okA := s.Get("a@stockmaster.test")
	codeB, okB := s.Get("b@stockmaster.test")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, "111111", codeA)
	assert.Equal(t, "222222", codeB)
}
