package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session es la vista de sesión que viaja dentro del token: identidad, rol y
// los tres flags de permiso efectivos. Reemplaza los flags globales de sesión
// del sistema anterior por un objeto firmado y acotado a la petición.
type Session struct {
	UserID    string
	Username  string
	Role      string // "USER" | "ADMIN"
	CanRead   bool
	CanCreate bool
	CanDelete bool
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Los permisos van en el token para que el middleware autorice sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CanRead   bool   `json:"can_read"`
	CanCreate bool   `json:"can_create"`
	CanDelete bool   `json:"can_delete"`
}

// Generate genera un token JWT firmado con la sesión completa.
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    s.UserID,
		Username:  s.Username,
		Role:      s.Role,
		CanRead:   s.CanRead,
		CanCreate: s.CanCreate,
		CanDelete: s.CanDelete,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión contenida.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Session, error) {
	if secret == "" {
		return Session{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("claims inválidos")
	}
	return Session{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
		CanRead:   claims.CanRead,
		CanCreate: claims.CanCreate,
		CanDelete: claims.CanDelete,
	}, nil
}
