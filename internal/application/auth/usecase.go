package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
	"github.com/gacc-hospital/snd-stock/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, auditRepo repository.AuditRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, auditRepo: auditRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, genera el JWT con los
// permisos efectivos y registra la entrada en la bitácora.
// Usuario inexistente y contraseña incorrecta devuelven el MISMO error
// (ErrInvalidCredentials) para no permitir enumerar usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	perms := user.EffectivePerms()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CanRead:   perms.Read,
		CanCreate: perms.Create,
		CanDelete: perms.Delete,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Append(&entity.AuditEntry{
		Username:  user.Username,
		Action:    entity.AuditLogin,
		Detail:    "inicio de sesión",
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Logout registra el cierre de sesión en la bitácora. El descarte del token es
// responsabilidad del cliente, no hay estado de sesión en el servidor.
func (uc *AuthUseCase) Logout(username string) error {
	return uc.auditRepo.Append(&entity.AuditEntry{
		Username:  username,
		Action:    entity.AuditLogout,
		Detail:    "cierre de sesión",
		CreatedAt: time.Now(),
	})
}

// ToUserResponse mapea la entidad a la respuesta pública (sin hash).
// Expone los permisos efectivos, no los almacenados.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.EffectivePerms()
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CanRead:   perms.Read,
		CanCreate: perms.Create,
		CanDelete: perms.Delete,
		CreatedAt: u.CreatedAt,
	}
}
