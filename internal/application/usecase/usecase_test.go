package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/application/usecase"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	dominv "github.com/gacc-hospital/snd-stock/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Los repos de catálogo imitan la constraint UNIQUE:
// un nombre repetido devuelve ErrDuplicate sin tocar la tabla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	c.ID = int64(len(r.categories) + 1)
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) { return r.categories, nil }

type fakeUnitRepo struct {
	units []*entity.Unit
}

func (r *fakeUnitRepo) Create(u *entity.Unit) error {
	for _, existing := range r.units {
		if existing.Name == u.Name {
			return domain.ErrDuplicate
		}
	}
	u.ID = int64(len(r.units) + 1)
	r.units = append(r.units, u)
	return nil
}

func (r *fakeUnitRepo) List() ([]*entity.Unit, error) { return r.units, nil }

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
}

func (r *fakeAuditRepo) Append(e *entity.AuditEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) ListRecent(limit, offset int) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
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

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = int64(len(r.products) + 1)
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error)      { return r.products[id], nil }
func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) UpdateBalance(id int64, balance decimal.Decimal) error {
	r.products[id].Balance = balance
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_CrearYListar(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	unitRepo := &fakeUnitRepo{}
	auditRepo := &fakeAuditRepo{}
	uc := usecase.NewCatalogUseCase(catRepo, unitRepo, auditRepo)

	cat, err := uc.CreateCategory(dto.CreateCatalogRequest{Name: "  Secos  "}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Secos", cat.Name, "el nombre se guarda sin espacios")

	unit, err := uc.CreateUnit(dto.CreateCatalogRequest{Name: "kg"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "kg", unit.Name)

	cats, err := uc.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)

	units, err := uc.ListUnits()
	require.NoError(t, err)
	require.Len(t, units, 1)

	// Una entrada de bitácora por alta
	require.Len(t, auditRepo.entries, 2)
	assert.Equal(t, entity.AuditCategoryCreate, auditRepo.entries[0].Action)
	assert.Equal(t, entity.AuditUnitCreate, auditRepo.entries[1].Action)
}

func TestCatalog_DuplicadoNoMutaLaTabla(t *testing.T) {
	catRepo := &fakeCategoryRepo{}
	uc := usecase.NewCatalogUseCase(catRepo, &fakeUnitRepo{}, &fakeAuditRepo{})

	_, err := uc.CreateCategory(dto.CreateCatalogRequest{Name: "Perecederos"}, "admin")
	require.NoError(t, err)

	_, err = uc.CreateCategory(dto.CreateCatalogRequest{Name: "Perecederos"}, "admin")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, catRepo.categories, 1)
}

func TestCatalog_NombreVacio(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&fakeCategoryRepo{}, &fakeUnitRepo{}, &fakeAuditRepo{})

	_, err := uc.CreateCategory(dto.CreateCatalogRequest{Name: "   "}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUnit(dto.CreateCatalogRequest{Name: ""}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_CrearUsuarioConFlags(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	auditRepo := &fakeAuditRepo{}
	uc := usecase.NewUserUseCase(userRepo, auditRepo)

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "nutricion1",
		Password: "secreto123",
		Role:     entity.RoleUser,
		CanRead:  true,
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role)
	assert.True(t, out.CanRead)
	assert.False(t, out.CanCreate)
	assert.False(t, out.CanDelete)

	// El hash persiste, nunca la contraseña plana
	stored := userRepo.users["nutricion1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditUserCreate, auditRepo.entries[0].Action)
	assert.Equal(t, "admin", auditRepo.entries[0].Username)
}

// Política de permisos: un ADMIN recibe los tres flags sin importar lo enviado.
func TestUser_AdminSiempreRecibeTodosLosFlags(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{users: map[string]*entity.User{}}, &fakeAuditRepo{})

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "jefe",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
		// flags en falso a propósito
	}, "admin")
	require.NoError(t, err)

	assert.True(t, out.CanRead)
	assert.True(t, out.CanCreate)
	assert.True(t, out.CanDelete)
}

func TestUser_UsernameRepetido(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(userRepo, &fakeAuditRepo{})

	_, err := uc.Create(dto.CreateUserRequest{Username: "ana", Password: "secreto123", Role: entity.RoleUser}, "admin")
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "ana", Password: "otra456", Role: entity.RoleUser}, "admin")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, userRepo.users, 1)
}

func TestUser_EntradaInvalida(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{users: map[string]*entity.User{}}, &fakeAuditRepo{})

	_, err := uc.Create(dto.CreateUserRequest{Username: "", Password: "x", Role: entity.RoleUser}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateUserRequest{Username: "ana", Password: "secreto123", Role: "SUPERVISOR"}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_RegistroConSaldoCero(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[int64]*entity.Product{}}
	auditRepo := &fakeAuditRepo{}
	uc := usecase.NewProductUseCase(productRepo, auditRepo)

	out, err := uc.Register(dto.RegisterProductRequest{
		Name:         "Arroz",
		Category:     "Secos",
		Unit:         "kg",
		MinThreshold: decimal.NewFromInt(10),
		UnitPrice:    decimal.RequireFromString("2.0"),
	}, "admin")
	require.NoError(t, err)

	assert.True(t, out.Balance.IsZero(), "todo producto nace con saldo 0")
	assert.Equal(t, dominv.StatusReorder, out.Status, "saldo 0 <= umbral 10")

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditProductCreate, auditRepo.entries[0].Action)
}

func TestProduct_ValoresNegativosRechazados(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: map[int64]*entity.Product{}}, &fakeAuditRepo{})

	_, err := uc.Register(dto.RegisterProductRequest{
		Name:         "Arroz",
		MinThreshold: decimal.NewFromInt(-1),
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterProductRequest{
		Name:      "Arroz",
		UnitPrice: decimal.RequireFromString("-0.5"),
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_GetByIDInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{products: map[int64]*entity.Product{}}, &fakeAuditRepo{})

	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_EstadoDerivadoEnListado(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[int64]*entity.Product{}}
	uc := usecase.NewProductUseCase(productRepo, &fakeAuditRepo{})

	out, err := uc.Register(dto.RegisterProductRequest{
		Name:         "Leche",
		MinThreshold: decimal.NewFromInt(5),
		UnitPrice:    decimal.RequireFromString("1.5"),
	}, "admin")
	require.NoError(t, err)

	// Simula un IN que deja el saldo sobre el umbral
	productRepo.products[out.ID].Balance = decimal.NewFromInt(20)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, dominv.StatusOK, got.Status)
	assert.Equal(t, "20", got.Balance.String())
}
