package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gacc-hospital/snd-stock/internal/application/auth"
	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	pkgjwt "github.com/gacc-hospital/snd-stock/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) { return int64(len(r.users)), nil }

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
}

func (r *fakeAuditRepo) Append(e *entity.AuditEntry) error {
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) ListRecent(limit, offset int) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

// seedUser inserta un usuario con contraseña hasheada.
func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string, perms entity.Permissions) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[username] = &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Perms:        perms,
		CreatedAt:    time.Now(),
	}
}

func newUseCase(userRepo *fakeUserRepo, auditRepo *fakeAuditRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(userRepo, auditRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "snd-stock-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: seed admin/admin123 → login exitoso con los tres flags.
func TestLogin_AdminSeed_OtorgaTodosLosFlags(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	seedUser(t, userRepo, "admin", "admin123", entity.RoleAdmin, entity.Permissions{})

	uc := newUseCase(userRepo, auditRepo)
	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	// ADMIN implica los tres flags aunque la fila los tenga en false
	assert.True(t, out.User.CanRead)
	assert.True(t, out.User.CanCreate)
	assert.True(t, out.User.CanDelete)

	// El token debe llevar la misma sesión
	session, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.True(t, session.CanRead && session.CanCreate && session.CanDelete)
}

func TestLogin_RegistraEntradaEnBitacora(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	seedUser(t, userRepo, "admin", "admin123", entity.RoleAdmin, entity.AllPermissions())

	uc := newUseCase(userRepo, auditRepo)
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditLogin, auditRepo.entries[0].Action)
	assert.Equal(t, "admin", auditRepo.entries[0].Username)
}

// Usuario inexistente y contraseña incorrecta devuelven EXACTAMENTE el mismo error.
func TestLogin_UsuarioInexistenteYPasswordIncorrecta_MismoError(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	seedUser(t, userRepo, "admin", "admin123", entity.RoleAdmin, entity.AllPermissions())

	uc := newUseCase(userRepo, auditRepo)

	_, errUnknown := uc.Login(dto.LoginRequest{Username: "noexiste", Password: "admin123"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error(),
		"no debe poder distinguirse usuario inexistente de contraseña incorrecta")

	// Login fallido no deja rastro en la bitácora ni estado de sesión
	assert.Empty(t, auditRepo.entries)
}

// Los flags de un USER son independientes y viajan tal cual en el token.
func TestLogin_UserConFlagsParciales(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	seedUser(t, userRepo, "cocina", "secreto1", entity.RoleUser, entity.Permissions{Read: true})

	uc := newUseCase(userRepo, auditRepo)
	out, err := uc.Login(dto.LoginRequest{Username: "cocina", Password: "secreto1"})
	require.NoError(t, err)

	assert.True(t, out.User.CanRead)
	assert.False(t, out.User.CanCreate)
	assert.False(t, out.User.CanDelete)
}

func TestLogout_RegistraEntradaEnBitacora(t *testing.T) {
	auditRepo := &fakeAuditRepo{}
	uc := newUseCase(newFakeUserRepo(), auditRepo)

	require.NoError(t, uc.Logout("admin"))
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditLogout, auditRepo.entries[0].Action)
}

// Determinismo del digest: misma contraseña verifica siempre contra su hash,
// contraseñas distintas no.
func TestDigest_VerificacionConsistente(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("admin123")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("admin124")))
}
