package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/inventory"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// ProductUseCase registro y consulta de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	auditRepo   repository.AuditRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, auditRepo repository.AuditRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, auditRepo: auditRepo}
}

// Register da de alta un producto con saldo 0. El saldo solo cambia después
// vía movimientos.
func (uc *ProductUseCase) Register(in dto.RegisterProductRequest, createdBy string) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinThreshold.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		Unit:         strings.TrimSpace(in.Unit),
		MinThreshold: in.MinThreshold,
		UnitPrice:    in.UnitPrice,
		Balance:      decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Append(&entity.AuditEntry{
		Username:  createdBy,
		Action:    entity.AuditProductCreate,
		Detail:    "producto registrado: " + name,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// GetByID obtiene un producto con su estado derivado.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// List pantalla de stock: todos los productos con su estado derivado.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out, nil
}

// ToProductResponse mapea la entidad a la respuesta, recalculando el estado.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		MinThreshold: p.MinThreshold,
		UnitPrice:    p.UnitPrice,
		Balance:      p.Balance,
		Status:       inventory.Status(p.Balance, p.MinThreshold),
		CreatedAt:    p.CreatedAt,
	}
}
