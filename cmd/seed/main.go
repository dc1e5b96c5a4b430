// seed puebla la base con datos demo: una bodega con ubicación interna,
// ubicaciones externas de proveedor y cliente, terceros y productos de ejemplo.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/postgres"
	"github.com/tu-usuario/stockmaster/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      "Bodega Principal",
		Address:   "Calle 10 # 20-30",
		CreatedAt: now,
		UpdatedAt: now,
	}
	must(warehouseRepo.Create(wh), "bodega")

	locationRepo := postgres.NewLocationRepository(pool)
	stockLoc := &entity.Location{
		ID:          uuid.New().String(),
		Name:        "Stock",
		Type:        entity.LocationTypeInternal,
		WarehouseID: wh.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	vendorLoc := &entity.Location{
		ID:        uuid.New().String(),
		Name:      "Proveedores",
		Type:      entity.LocationTypeVendor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	customerLoc := &entity.Location{
		ID:        uuid.New().String(),
		Name:      "Clientes",
		Type:      entity.LocationTypeCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	lossLoc := &entity.Location{
		ID:        uuid.New().String(),
		Name:      "Pérdidas de inventario",
		Type:      entity.LocationTypeInventoryLoss,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, loc := range []*entity.Location{stockLoc, vendorLoc, customerLoc, lossLoc} {
		must(locationRepo.Create(loc), "ubicación "+loc.Name)
	}

	partnerRepo := postgres.NewPartnerRepository(pool)
	partners := []*entity.Partner{
		{ID: uuid.New().String(), Name: "Distribuidora Andina", Type: entity.PartnerTypeVendor, Contact: "ventas@andina.example", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Comercial del Norte", Type: entity.PartnerTypeCustomer, Contact: "compras@norte.example", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range partners {
		must(partnerRepo.Create(p), "tercero "+p.Name)
	}

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{
			ID: uuid.New().String(), Name: "Tornillo hexagonal M8", SKU: "TOR-M8",
			Category: "Ferretería", UOM: "unidad",
			UnitPrice: decimal.NewFromFloat(0.35), MinStockLevel: decimal.NewFromInt(500),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Pintura blanca 1gal", SKU: "PIN-BL-1G",
			Category: "Pinturas", UOM: "galón",
			UnitPrice: decimal.NewFromFloat(18.90), MinStockLevel: decimal.NewFromInt(20),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Cable THHN 12 AWG", SKU: "CAB-12AWG",
			Category: "Eléctricos", UOM: "metro",
			UnitPrice: decimal.NewFromFloat(0.80), MinStockLevel: decimal.NewFromInt(200),
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, p := range products {
		must(productRepo.Create(p), "producto "+p.SKU)
	}

	fmt.Println("datos demo creados:")
	fmt.Printf("  bodega    %s (%s)\n", wh.Name, wh.ID)
	fmt.Printf("  ubicación %s (%s)\n", stockLoc.Name, stockLoc.ID)
	for _, p := range products {
		fmt.Printf("  producto  %s (%s)\n", p.SKU, p.ID)
	}
}

func must(err error, what string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear %s: %v\n", what, err)
		os.Exit(1)
	}
}
