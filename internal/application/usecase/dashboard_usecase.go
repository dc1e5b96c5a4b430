package usecase

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// DashboardUseCase arma los KPIs del tablero principal.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	operationRepo repository.OperationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, operationRepo repository.OperationRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, operationRepo: operationRepo}
}

// KPIs devuelve el total de productos y el conteo de operaciones por estado.
// Todos los estados aparecen en el mapa aunque su conteo sea cero.
func (uc *DashboardUseCase) KPIs(ctx context.Context) (*dto.DashboardKPIResponse, error) {
	total, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}
	counts, err := uc.operationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	ops := map[string]int{
		entity.OperationStatusDraft:   0,
		entity.OperationStatusWaiting: 0,
		entity.OperationStatusReady:   0,
		entity.OperationStatusDone:    0,
	}
	for status, n := range counts {
		ops[status] = n
	}
	return &dto.DashboardKPIResponse{
		TotalProducts: total,
		Operations:    ops,
	}, nil
}
