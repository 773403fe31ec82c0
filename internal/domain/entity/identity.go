package entity

import "time"

// Identity sujeto autenticado de una sesión. Solo ID y email salen del servicio de auth.
type Identity struct {
	ID    string
	Email string
}

// User fila de credenciales detrás de una Identity.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}

// Identity proyecta el usuario a la identidad de sesión.
func (u *User) Identity() *Identity {
	if u == nil {
		return nil
	}
	return &Identity{ID: u.ID, Email: u.Email}
}

// Session una sesión iniciada; cerrar sesión la revoca, no borra al usuario.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active informa si la sesión sigue vigente en el instante now.
func (s *Session) Active(now time.Time) bool {
	return s != nil && s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
