package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// DocumentLine línea de la operación enriquecida para el documento impreso.
type DocumentLine struct {
	SKU         string
	ProductName string
	UOM         string
	DemandQty   decimal.Decimal
	DoneQty     decimal.Decimal
}

// DocumentData todo lo que el generador necesita para armar el documento.
type DocumentData struct {
	Operation  *entity.StockOperation
	SourceName string // nombre de la ubicación origen; "" si es externa
	DestName   string
	Partner    *entity.Partner // nil si la operación no tiene tercero
	Lines      []DocumentLine
}

// OperationPDFGenerator genera el documento imprimible de una operación
// (hoja de picking / comprobante de recepción).
type OperationPDFGenerator interface {
	GenerateOperationPDF(ctx context.Context, data DocumentData) ([]byte, error)
}

// DocumentUseCase arma los datos del documento de una operación y delega la
// generación del PDF al adaptador.
type DocumentUseCase struct {
	opRepo      repository.OperationRepository
	locRepo     repository.LocationRepository
	partnerRepo repository.PartnerRepository
	productRepo repository.ProductRepository
	gen         OperationPDFGenerator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	opRepo repository.OperationRepository,
	locRepo repository.LocationRepository,
	partnerRepo repository.PartnerRepository,
	productRepo repository.ProductRepository,
	gen OperationPDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		opRepo:      opRepo,
		locRepo:     locRepo,
		partnerRepo: partnerRepo,
		productRepo: productRepo,
		gen:         gen,
	}
}

// OperationDocument genera el PDF de la operación indicada.
func (uc *DocumentUseCase) OperationDocument(ctx context.Context, operationID string) ([]byte, error) {
	op, err := uc.opRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}

	data := DocumentData{Operation: op}
	if op.SourceLocID != "" {
		loc, err := uc.locRepo.GetByID(op.SourceLocID)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			data.SourceName = loc.Name
		}
	}
	if op.DestLocID != "" {
		loc, err := uc.locRepo.GetByID(op.DestLocID)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			data.DestName = loc.Name
		}
	}
	if op.PartnerID != "" {
		p, err := uc.partnerRepo.GetByID(op.PartnerID)
		if err != nil {
			return nil, err
		}
		data.Partner = p
	}

	for _, line := range op.Lines {
		dl := DocumentLine{
			ProductName: line.ProductID,
			DemandQty:   line.DemandQty,
			DoneQty:     line.DoneQty,
		}
		p, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			dl.SKU = p.SKU
			dl.ProductName = p.Name
			dl.UOM = p.UOM
		}
		data.Lines = append(data.Lines, dl)
	}

	return uc.gen.GenerateOperationPDF(ctx, data)
}
