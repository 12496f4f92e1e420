package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gacc-hospital/snd-stock/internal/application/auth"
	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// UserUseCase administración de usuarios (pantalla solo ADMIN).
type UserUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, auditRepo repository.AuditRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditRepo: auditRepo}
}

// Create da de alta un usuario con rol y flags. Política de permisos: un ADMIN
// recibe siempre los tres flags, sin importar lo enviado; para USER los flags
// son independientes. createdBy es el admin autenticado, para la bitácora.
func (uc *UserUseCase) Create(in dto.CreateUserRequest, createdBy string) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleUser && in.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	perms := entity.Permissions{Read: in.CanRead, Create: in.CanCreate, Delete: in.CanDelete}
	if in.Role == entity.RoleAdmin {
		perms = entity.AllPermissions()
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Perms:        perms,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Append(&entity.AuditEntry{
		Username:  createdBy,
		Action:    entity.AuditUserCreate,
		Detail:    "usuario creado: " + user.Username + " (" + user.Role + ")",
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios, sin hashes.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}
