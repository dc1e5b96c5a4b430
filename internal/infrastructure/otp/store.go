// Package otp implementa un almacén en memoria de códigos de recuperación.
// Los códigos son de un solo nodo y expiran solos; si la API escala
// horizontalmente hay que mover esto a un almacén compartido.
package otp

import (
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// Store guarda códigos OTP por email con TTL. Seguro para uso concurrente.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewStore construye el almacén.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Put guarda (o reemplaza) el código del email con el TTL indicado.
func (s *Store) Put(email, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	s.entries[email] = entry{code: code, expiresAt: time.Now().Add(ttl)}
}

// Get devuelve el código vigente del email; ok=false si no hay o expiró.
func (s *Store) Get(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[email]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, email)
		return "", false
	}
	return e.code, true
}

// Delete elimina el código del email (tras un reset exitoso).
func (s *Store) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
}

// evictExpired limpia entradas vencidas. Llamar con el lock tomado.
func (s *Store) evictExpired() {
	now := time.Now()
	for email, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, email)
		}
	}
}
