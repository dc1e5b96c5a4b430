package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Si initial_stock > 0 siembra en la misma transacción
// un move de apertura (origen externo -> initial_location_id) para que el stock
// derivado arranque en ese valor.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.IsPositive() && in.InitialLocationID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		UOM:           in.UOM,
		UnitPrice:     in.UnitPrice,
		MinStockLevel: in.MinStockLevel,
		InitialStock:  in.InitialStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(r inventory.Repos) error {
		if err := r.Products.Create(product); err != nil {
			return err
		}
		if !in.InitialStock.IsPositive() {
			return nil
		}
		loc, err := r.Locations.GetByID(in.InitialLocationID)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
		mv := &entity.StockMove{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			DestLocID: in.InitialLocationID,
			Quantity:  in.InitialStock,
			Date:      now,
		}
		if err := r.Moves.Create(ctx, mv); err != nil {
			return err
		}
		entry := &entity.StockLedger{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			LocationID:   in.InitialLocationID,
			ChangeQty:    in.InitialStock,
			ResultingQty: in.InitialStock,
			MoveID:       mv.ID,
			Reason:       "opening stock",
			Date:         now,
		}
		if err := r.Ledger.Create(ctx, entry); err != nil {
			return err
		}
		quant, err := r.Quants.GetForUpdate(ctx, product.ID, in.InitialLocationID)
		if err != nil {
			return err
		}
		quant.Quantity = quant.Quantity.Add(in.InitialStock)
		quant.UpdatedAt = now
		return r.Quants.Upsert(ctx, quant)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos mutables de un producto (el SKU es identidad y no cambia).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UOM != nil {
		product.UOM = *in.UOM
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		UOM:           p.UOM,
		UnitPrice:     p.UnitPrice,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
