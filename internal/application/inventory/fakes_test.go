package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	appinv "github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia.
// Replican la semántica relevante de los adaptadores de postgres (sumas del
// ledger, demanda pendiente, quant en cero si no existe) sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

// memStore es el estado compartido por todos los fakes de un test.
type memStore struct {
	mu        sync.Mutex
	ops       map[string]*entity.StockOperation
	opOrder   []string // ids en orden de creación, para LastReferenceByType
	moves     []*entity.StockMove
	quants    map[string]*entity.StockQuant // clave productID + "|" + locationID
	ledger    []*entity.StockLedger
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	rules     map[string]*entity.ReorderRule
}

func newMemStore() *memStore {
	return &memStore{
		ops:       make(map[string]*entity.StockOperation),
		quants:    make(map[string]*entity.StockQuant),
		products:  make(map[string]*entity.Product),
		locations: make(map[string]*entity.Location),
		rules:     make(map[string]*entity.ReorderRule),
	}
}

// repos construye el juego de repositorios fake sobre el mismo estado.
func (s *memStore) repos() appinv.Repos {
	return appinv.Repos{
		Operations: &fakeOperationRepo{s: s},
		Moves:      &fakeMoveRepo{s: s},
		Quants:     &fakeQuantRepo{s: s},
		Ledger:     &fakeLedgerRepo{s: s},
		Products:   &fakeProductRepo{s: s},
		Locations:  &fakeLocationRepo{s: s},
	}
}

// fakeTxRunner ejecuta la función directamente sobre los fakes: en memoria no
// hay transacciones, pero el contrato de atomicidad no se ejercita aquí.
type fakeTxRunner struct {
	s *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(r appinv.Repos) error) error {
	return fn(r.s.repos())
}

// ── OperationRepository ───────────────────────────────────────────────────────

type fakeOperationRepo struct {
	s *memStore
}

func (f *fakeOperationRepo) Create(_ context.Context, op *entity.StockOperation) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *op
	cp.Lines = nil
	f.s.ops[op.ID] = &cp
	f.s.opOrder = append(f.s.opOrder, op.ID)
	return nil
}

func (f *fakeOperationRepo) CreateLine(_ context.Context, line *entity.StockOperationLine) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	op := f.s.ops[line.OperationID]
	cp := *line
	op.Lines = append(op.Lines, cp)
	return nil
}

func (f *fakeOperationRepo) GetByID(_ context.Context, id string) (*entity.StockOperation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	op, ok := f.s.ops[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	cp.Lines = append([]entity.StockOperationLine(nil), op.Lines...)
	return &cp, nil
}

func (f *fakeOperationRepo) List(_ context.Context, status, operationType string, limit, offset int) ([]*entity.StockOperation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.StockOperation, 0)
	for _, id := range f.s.opOrder {
		op := f.s.ops[id]
		if status != "" && op.Status != status {
			continue
		}
		if operationType != "" && op.OperationType != operationType {
			continue
		}
		cp := *op
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOperationRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.ops[id].Status = status
	return nil
}

func (f *fakeOperationRepo) UpdateLineDone(_ context.Context, lineID string, doneQty decimal.Decimal) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, op := range f.s.ops {
		for i := range op.Lines {
			if op.Lines[i].ID == lineID {
				op.Lines[i].DoneQty = doneQty
				return nil
			}
		}
	}
	return nil
}

func (f *fakeOperationRepo) AcquireReferenceLock(_ context.Context, _ string) error {
	return nil
}

func (f *fakeOperationRepo) LastReferenceByType(_ context.Context, operationType string) (string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	last := ""
	for _, id := range f.s.opOrder {
		if op := f.s.ops[id]; op.OperationType == operationType {
			last = op.Reference
		}
	}
	return last, nil
}

func (f *fakeOperationRepo) OutstandingDemand(_ context.Context, productID, sourceLocID, excludeOpID string) (decimal.Decimal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	total := decimal.Zero
	for _, op := range f.s.ops {
		if op.ID == excludeOpID || op.SourceLocID != sourceLocID {
			continue
		}
		switch op.Status {
		case entity.OperationStatusDraft, entity.OperationStatusWaiting, entity.OperationStatusReady:
		default:
			continue
		}
		for _, l := range op.Lines {
			if l.ProductID == productID {
				total = total.Add(l.Remaining())
			}
		}
	}
	return total, nil
}

func (f *fakeOperationRepo) CountByStatus(_ context.Context) (map[string]int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make(map[string]int)
	for _, op := range f.s.ops {
		out[op.Status]++
	}
	return out, nil
}

// ── MoveRepository ────────────────────────────────────────────────────────────

type fakeMoveRepo struct {
	s *memStore
}

func (f *fakeMoveRepo) Create(_ context.Context, move *entity.StockMove) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *move
	f.s.moves = append(f.s.moves, &cp)
	return nil
}

func (f *fakeMoveRepo) GetByID(_ context.Context, id string) (*entity.StockMove, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, mv := range f.s.moves {
		if mv.ID == id {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMoveRepo) List(_ context.Context, productID string, limit, offset int) ([]*entity.StockMove, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.StockMove, 0)
	for _, mv := range f.s.moves {
		if productID != "" && mv.ProductID != productID {
			continue
		}
		cp := *mv
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SumIn replica al adaptador de postgres: con ubicación suma las entradas a esa
// ubicación; sin ubicación (nil) suma solo los lados internos (dest no vacío).
func (f *fakeMoveRepo) SumIn(_ context.Context, productID string, locationID *string) (decimal.Decimal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	total := decimal.Zero
	for _, mv := range f.s.moves {
		if mv.ProductID != productID {
			continue
		}
		if locationID != nil {
			if mv.DestLocID == *locationID {
				total = total.Add(mv.Quantity)
			}
		} else if mv.DestLocID != "" {
			total = total.Add(mv.Quantity)
		}
	}
	return total, nil
}

func (f *fakeMoveRepo) SumOut(_ context.Context, productID string, locationID *string) (decimal.Decimal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	total := decimal.Zero
	for _, mv := range f.s.moves {
		if mv.ProductID != productID {
			continue
		}
		if locationID != nil {
			if mv.SourceLocID == *locationID {
				total = total.Add(mv.Quantity)
			}
		} else if mv.SourceLocID != "" {
			total = total.Add(mv.Quantity)
		}
	}
	return total, nil
}

func (f *fakeMoveRepo) SumInByWarehouse(_ context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	total := decimal.Zero
	for _, mv := range f.s.moves {
		if mv.ProductID == productID && f.inWarehouse(mv.DestLocID, warehouseID) {
			total = total.Add(mv.Quantity)
		}
	}
	return total, nil
}

func (f *fakeMoveRepo) SumOutByWarehouse(_ context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	total := decimal.Zero
	for _, mv := range f.s.moves {
		if mv.ProductID == productID && f.inWarehouse(mv.SourceLocID, warehouseID) {
			total = total.Add(mv.Quantity)
		}
	}
	return total, nil
}

// inWarehouse resuelve si la ubicación pertenece a la bodega. Llamar con el lock tomado.
func (f *fakeMoveRepo) inWarehouse(locationID, warehouseID string) bool {
	if locationID == "" {
		return false
	}
	loc, ok := f.s.locations[locationID]
	return ok && loc.WarehouseID == warehouseID
}

// ── QuantRepository ───────────────────────────────────────────────────────────

type fakeQuantRepo struct {
	s *memStore
}

func quantKey(productID, locationID string) string {
	return productID + "|" + locationID
}

func (f *fakeQuantRepo) GetByID(_ context.Context, id string) (*entity.StockQuant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, q := range f.s.quants {
		if q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeQuantRepo) Get(_ context.Context, productID, locationID string) (*entity.StockQuant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	q, ok := f.s.quants[quantKey(productID, locationID)]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuantRepo) GetForUpdate(_ context.Context, productID, locationID string) (*entity.StockQuant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if q, ok := f.s.quants[quantKey(productID, locationID)]; ok {
		cp := *q
		return &cp, nil
	}
	return &entity.StockQuant{
		ID:          quantKey(productID, locationID),
		ProductID:   productID,
		LocationID:  locationID,
		Quantity:    decimal.Zero,
		ReservedQty: decimal.Zero,
	}, nil
}

func (f *fakeQuantRepo) Upsert(_ context.Context, quant *entity.StockQuant) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *quant
	f.s.quants[quantKey(quant.ProductID, quant.LocationID)] = &cp
	return nil
}

func (f *fakeQuantRepo) List(_ context.Context, locationID string, limit, offset int) ([]*entity.StockQuant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.StockQuant, 0)
	for _, q := range f.s.quants {
		if locationID != "" && q.LocationID != locationID {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── LedgerRepository ──────────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	s *memStore
}

func (f *fakeLedgerRepo) Create(_ context.Context, entry *entity.StockLedger) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *entry
	f.s.ledger = append(f.s.ledger, &cp)
	return nil
}

func (f *fakeLedgerRepo) GetByID(_ context.Context, id string) (*entity.StockLedger, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, e := range f.s.ledger {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) List(_ context.Context, productID string, limit, offset int) ([]*entity.StockLedger, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.StockLedger, 0)
	for _, e := range f.s.ledger {
		if productID != "" && e.ProductID != productID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	s *memStore
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *product
	f.s.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, p := range f.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *product
	f.s.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(f.s.products))
	for _, p := range f.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (f *fakeProductRepo) Count() (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return len(f.s.products), nil
}

func (f *fakeProductRepo) Delete(id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.products, id)
	return nil
}

// ── LocationRepository ────────────────────────────────────────────────────────

type fakeLocationRepo struct {
	s *memStore
}

func (f *fakeLocationRepo) Create(location *entity.Location) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *location
	f.s.locations[location.ID] = &cp
	return nil
}

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	loc, ok := f.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *loc
	return &cp, nil
}

func (f *fakeLocationRepo) List(warehouseID string, limit, offset int) ([]*entity.Location, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.Location, 0)
	for _, loc := range f.s.locations {
		if warehouseID != "" && loc.WarehouseID != warehouseID {
			continue
		}
		cp := *loc
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeLocationRepo) Update(location *entity.Location) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *location
	f.s.locations[location.ID] = &cp
	return nil
}

func (f *fakeLocationRepo) Delete(id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.locations, id)
	return nil
}

// ── ReorderRuleRepository ─────────────────────────────────────────────────────

type fakeReorderRuleRepo struct {
	s *memStore
}

func (f *fakeReorderRuleRepo) Create(rule *entity.ReorderRule) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *rule
	f.s.rules[rule.ID] = &cp
	return nil
}

func (f *fakeReorderRuleRepo) GetByID(id string) (*entity.ReorderRule, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.rules[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReorderRuleRepo) List(limit, offset int) ([]*entity.ReorderRule, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*entity.ReorderRule, 0, len(f.s.rules))
	for _, r := range f.s.rules {
		cp := *r
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeReorderRuleRepo) Update(rule *entity.ReorderRule) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *rule
	f.s.rules[rule.ID] = &cp
	return nil
}

func (f *fakeReorderRuleRepo) Delete(id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.rules, id)
	return nil
}
