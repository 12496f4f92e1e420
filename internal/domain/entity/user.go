package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Permissions son los tres flags independientes que gobiernan pantallas y acciones.
// Son ortogonales al rol: un USER puede tener cualquier combinación.
type Permissions struct {
	Read   bool
	Create bool
	Delete bool
}

// AllPermissions flags completos (los recibe todo ADMIN).
func AllPermissions() Permissions {
	return Permissions{Read: true, Create: true, Delete: true}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // USER, ADMIN
	Perms        Permissions
	CreatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol ADMIN.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// EffectivePerms devuelve los flags a usar para autorizar: política elegida,
// ADMIN implica los tres flags sin importar lo guardado; USER usa los suyos.
func (u *User) EffectivePerms() Permissions {
	if u.IsAdmin() {
		return AllPermissions()
	}
	return u.Perms
}
