package auth

import "time"

// OTPStore guarda códigos de un solo uso por email, con vencimiento.
// El adaptador por defecto es en memoria con TTL; el puerto deja abierta una
// implementación persistente (Redis, tabla) sin tocar el caso de uso.
type OTPStore interface {
	Put(email, code string, ttl time.Duration)
	// Get devuelve el código vigente; ok=false si no existe o ya venció.
	Get(email string) (code string, ok bool)
	Delete(email string)
}

// Mailer envía correos transaccionales (OTP de recuperación).
type Mailer interface {
	Send(to, subject, body string) error
}
