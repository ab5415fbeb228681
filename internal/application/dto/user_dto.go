package dto

import "time"

// RegisterRequest entrada para registro de usuarios (solo admin).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`              // admin | commander | logistics
	BaseID   string `json:"base_id,omitempty"` // base "casa"; vacío = visión global
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	BaseID    string    `json:"base_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y las capacidades del rol, para que la
// UI sepa qué secciones mostrar sin lógica propia.
type LoginResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	Capabilities []string     `json:"capabilities"`
}
