package usecase

import (
	"strings"
	"time"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// CatalogUseCase altas y listados de categorías y unidades de medida.
// Duplicados los rechaza la constraint UNIQUE; el repo los mapea a ErrDuplicate
// sin efecto alguno sobre la tabla.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
	auditRepo    repository.AuditRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, unitRepo repository.UnitRepository, auditRepo repository.AuditRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, unitRepo: unitRepo, auditRepo: auditRepo}
}

// CreateCategory alta de categoría.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCatalogRequest, createdBy string) (*dto.CatalogResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Category{Name: name, CreatedAt: time.Now()}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, err
	}
	if err := uc.auditRepo.Append(&entity.AuditEntry{
		Username:  createdBy,
		Action:    entity.AuditCategoryCreate,
		Detail:    "categoría creada: " + name,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: cat.ID, Name: cat.Name, CreatedAt: cat.CreatedAt}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]*dto.CatalogResponse, error) {
	cats, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, &dto.CatalogResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// CreateUnit alta de unidad de medida.
func (uc *CatalogUseCase) CreateUnit(in dto.CreateCatalogRequest, createdBy string) (*dto.CatalogResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := &entity.Unit{Name: name, CreatedAt: time.Now()}
	if err := uc.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	if err := uc.auditRepo.Append(&entity.AuditEntry{
		Username:  createdBy,
		Action:    entity.AuditUnitCreate,
		Detail:    "unidad creada: " + name,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, err
	}
	return &dto.CatalogResponse{ID: unit.ID, Name: unit.Name, CreatedAt: unit.CreatedAt}, nil
}

// ListUnits lista todas las unidades.
func (uc *CatalogUseCase) ListUnits() ([]*dto.CatalogResponse, error) {
	units, err := uc.unitRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogResponse, 0, len(units))
	for _, u := range units {
		out = append(out, &dto.CatalogResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt})
	}
	return out, nil
}
