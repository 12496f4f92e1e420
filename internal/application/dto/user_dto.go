package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (pantalla de administración;
// password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=60"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=USER ADMIN"`
	CanRead   bool   `json:"can_read"`
	CanCreate bool   `json:"can_create"`
	CanDelete bool   `json:"can_delete"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CanRead   bool      `json:"can_read"`
	CanCreate bool      `json:"can_create"`
	CanDelete bool      `json:"can_delete"`
	CreatedAt time.Time `json:"created_at"`
}
