package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación de
// contraseña por OTP enviado al correo.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpStore OTPStore
	mailer   Mailer
	jwtCfg   JWTConfig
	otpTTL   time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, otpStore OTPStore, mailer Mailer, jwtCfg JWTConfig, otpTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, otpStore: otpStore, mailer: mailer, jwtCfg: jwtCfg, otpTTL: otpTTL}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// RequestPasswordReset genera un OTP numérico de 6 dígitos, lo guarda con TTL y
// lo envía al correo. Si el email no existe no hace nada ni lo revela: el handler
// responde igual en ambos casos para no filtrar qué correos están registrados.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	otp, err := generateOTP()
	if err != nil {
		return err
	}
	uc.otpStore.Put(email, otp, uc.otpTTL)

	subject := "Tu código de recuperación de StockMaster"
	body := fmt.Sprintf(
		"Usa este código de un solo uso para restablecer tu contraseña: %s\nVence en %d minutos.",
		otp, int(uc.otpTTL.Minutes()),
	)
	return uc.mailer.Send(email, subject, body)
}

// VerifyResetOTP comprueba que el OTP exista, coincida y no haya vencido.
// No lo consume: el consumo ocurre en ResetPassword.
func (uc *AuthUseCase) VerifyResetOTP(email, otp string) error {
	stored, ok := uc.otpStore.Get(email)
	if !ok || stored != otp {
		return domain.ErrInvalidOTP
	}
	return nil
}

// ResetPassword cambia la contraseña si el OTP es válido y lo consume.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if err := uc.VerifyResetOTP(in.Email, in.OTP); err != nil {
		return err
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.otpStore.Delete(in.Email)
	return nil
}

// generateOTP produce 6 dígitos con crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
