package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/pkg/jwt"
)

// Local key para la sesión en Fiber.
const localSession = "session"

// AuthMiddleware valida el Bearer Token JWT y deja la sesión (identidad + rol +
// permisos) en c.Locals. La autorización posterior se decide con esos flags,
// sin volver a la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		session, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localSession, session)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) jwt.Session {
	v := c.Locals(localSession)
	if v == nil {
		return jwt.Session{}
	}
	s, _ := v.(jwt.Session)
	return s
}

// Flags de permiso que puede exigir una ruta.
const (
	PermRead   = "read"
	PermCreate = "create"
	PermDelete = "delete"
)

// RequirePermission exige uno de los tres flags de la sesión. Usar DESPUÉS de
// AuthMiddleware. Sin el flag, la pantalla responde 403 con mensaje estático.
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s.Username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada"})
		}
		allowed := false
		switch perm {
		case PermRead:
			allowed = s.CanRead
		case PermCreate:
			allowed = s.CanCreate
		case PermDelete:
			allowed = s.CanDelete
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permiso para esta pantalla"})
		}
		return c.Next()
	}
}

// RequireAdmin exige rol ADMIN (pantallas de usuarios y bitácora).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if s.Username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada"})
		}
		if s.Role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "pantalla reservada a ADMIN"})
		}
		return c.Next()
	}
}
