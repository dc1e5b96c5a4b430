package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/otp"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo guarda usuarios en memoria, indexados por id y por email.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeMailer captura los correos enviados en vez de hablar SMTP.
type fakeMailer struct {
	sent []struct{ to, subject, body string }
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmail    = "bodega@stockmaster.test"
	testPassword = "secreta-y-larga"
)

// buildAuth arma el caso de uso con fakes y el almacén OTP en memoria real.
func buildAuth() (*auth.AuthUseCase, *fakeUserRepo, *otp.Store, *fakeMailer) {
	users := newFakeUserRepo()
	store := otp.NewStore()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(users, store, mailer,
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockmaster-test"},
		10*time.Minute)
	return uc, users, store, mailer
}

// register registra el usuario de test.
func register(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	u, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    testEmail,
		Password: testPassword,
		FullName: "Bodeguero de Prueba",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests registro y login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: registrar guarda el hash bcrypt (nunca la contraseña) y permite login.
func TestRegisterYLogin(t *testing.T) {
	uc, users, _, _ := buildAuth()
	u := register(t, uc)

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, testPassword, stored.PasswordHash, "la contraseña nunca se guarda en claro")

	res, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, testEmail, res.User.Email)
}

// Caso 2: el email es único.
func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := buildAuth()
	register(t, uc)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: testEmail, Password: "otra-password"})
	assert.Equal(t, domain.ErrEmailAlreadyExists, err)
}

// Caso 3: credenciales malas fallan igual para usuario inexistente y password errada.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _, _ := buildAuth()
	register(t, uc)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: "equivocada"})
	assert.Equal(t, domain.ErrUnauthorized, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@stockmaster.test", Password: testPassword})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests recuperación de contraseña por OTP
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el flujo completo solicitar → verificar → resetear cambia la contraseña
// y consume el OTP.
func TestPasswordReset_FlujoCompleto(t *testing.T) {
	uc, _, store, mailer := buildAuth()
	register(t, uc)

	require.NoError(t, uc.RequestPasswordReset(testEmail))
	require.Len(t, mailer.sent, 1, "debe enviarse exactamente un correo")
	assert.Equal(t, testEmail, mailer.sent[0].to)

	code, ok := store.Get(testEmail)
	require.True(t, ok, "el OTP debe quedar guardado con TTL")
	require.Len(t, code, 6)
	assert.Contains(t, mailer.sent[0].body, code, "el correo lleva el código generado")

	require.NoError(t, uc.VerifyResetOTP(testEmail, code))

	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{
		Email:       testEmail,
		OTP:         code,
		NewPassword: "nueva-password-larga",
	}))

	// La contraseña vieja ya no sirve; la nueva sí
	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.Equal(t, domain.ErrUnauthorized, err)
	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: "nueva-password-larga"})
	assert.NoError(t, err)

	// El OTP es de un solo uso
	err = uc.ResetPassword(dto.ResetPasswordRequest{
		Email:       testEmail,
		OTP:         code,
		NewPassword: "otra-mas",
	})
	assert.Equal(t, domain.ErrInvalidOTP, err)
}

// Caso 2: un OTP equivocado no pasa la verificación ni el reset.
func TestPasswordReset_OTPIncorrecto(t *testing.T) {
	uc, _, store, _ := buildAuth()
	register(t, uc)
	require.NoError(t, uc.RequestPasswordReset(testEmail))

	// Un código garantizado distinto al generado
	real, ok := store.Get(testEmail)
	require.True(t, ok)
	wrong := "000000"
	if wrong == real {
		wrong = "111111"
	}

	assert.Equal(t, domain.ErrInvalidOTP, uc.VerifyResetOTP(testEmail, wrong))
	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email:       testEmail,
		OTP:         wrong,
		NewPassword: "lo-que-sea-larga",
	})
	assert.Equal(t, domain.ErrInvalidOTP, err)
}

// Caso 3: un email no registrado no envía correo ni revela nada.
func TestPasswordReset_EmailDesconocidoNoEnvia(t *testing.T) {
	uc, _, store, mailer := buildAuth()

	require.NoError(t, uc.RequestPasswordReset("nadie@stockmaster.test"))
	assert.Empty(t, mailer.sent, "no debe enviarse correo para emails desconocidos")
	_, ok := store.Get("nadie@stockmaster.test")
	assert.False(t, ok)
}
