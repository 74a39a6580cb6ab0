package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
	"github.com/batmanhot/logistica-inventario/pkg/textnorm"
)

// DefaultCategory categoría asignada cuando el alta no indica una.
const DefaultCategory = "General"

// UseCase maestro de productos. El núcleo de inventario solo lo consulta por SKU.
type UseCase struct {
	runner appinventory.StateRunner
	newID  func() string
	now    inventory.Clock
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner appinventory.StateRunner, newID func() string, now inventory.Clock, log *logger.Logger) *UseCase {
	return &UseCase{runner: runner, newID: newID, now: now, log: log.Component("catalog")}
}

// Create agrega un producto. SKU único y nombre obligatorio.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCatalogItemRequest) (*entity.CatalogItem, error) {
	item := entity.CatalogItem{
		SKU:        strings.ToUpper(strings.TrimSpace(in.SKU)),
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Barcode:    strings.TrimSpace(in.Barcode),
		Perishable: in.Perishable,
		Status:     entity.CatalogStatusActive,
	}
	if item.SKU == "" {
		return nil, domain.Invalid("sku", "el SKU es obligatorio")
	}
	if item.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		item.ID = uc.newID()
		if !agg.AddCatalogItem(item) {
			return domain.ErrDuplicate
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sku", item.SKU).Bool("perishable", item.Perishable).Msg("producto añadido al catálogo")
	return &item, nil
}

// Update edita un producto. Renombrarlo actualiza el nombre de sus slots de stock.
func (uc *UseCase) Update(ctx context.Context, sku string, in dto.UpdateCatalogItemRequest) (*entity.CatalogItem, error) {
	var out entity.CatalogItem
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		item, ok := agg.Catalog().FindBySKU(sku)
		if !ok {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			item.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			item.Category = strings.TrimSpace(*in.Category)
		}
		if in.Barcode != nil {
			item.Barcode = strings.TrimSpace(*in.Barcode)
		}
		if in.Perishable != nil {
			item.Perishable = *in.Perishable
		}
		if in.Status != nil {
			item.Status = strings.ToLower(strings.TrimSpace(*in.Status))
		}
		if item.Name == "" {
			return domain.Invalid("name", "el nombre es obligatorio")
		}
		if item.Category == "" {
			item.Category = DefaultCategory
		}
		if item.Status != entity.CatalogStatusActive && item.Status != entity.CatalogStatusInactive {
			return domain.Invalid("status", "estado inválido")
		}
		agg.UpdateCatalogItem(item)
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sku", sku).Msg("producto actualizado")
	return &out, nil
}

// Delete quita un producto del catálogo. Se rechaza mientras tenga stock o lotes con saldo;
// su historial de movimientos se conserva.
func (uc *UseCase) Delete(ctx context.Context, sku string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if _, ok := agg.Catalog().FindBySKU(sku); !ok {
			return domain.ErrNotFound
		}
		for _, sl := range agg.Snapshot().Slots() {
			if sl.SKU == sku && sl.Quantity != 0 {
				return fmt.Errorf("%w: No se puede eliminar un producto con stock (%s: %d)", domain.ErrConflict, sl.Warehouse, sl.Quantity)
			}
		}
		for _, b := range agg.Batches.Batches() {
			if b.SKU == sku && b.CurrentQuantity > 0 {
				return fmt.Errorf("%w: No se puede eliminar un producto con lotes vigentes (%s)", domain.ErrConflict, b.LotNumber)
			}
		}
		agg.RemoveCatalogItem(sku)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("sku", sku).Msg("producto eliminado del catálogo")
	return nil
}

// Get busca un producto por SKU; (nil, nil) si no existe.
func (uc *UseCase) Get(ctx context.Context, sku string) (*entity.CatalogItem, error) {
	var out *entity.CatalogItem
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		if it, ok := agg.Catalog().FindBySKU(sku); ok {
			out = &it
		}
		return nil
	})
	return out, err
}

// List devuelve el catálogo filtrado en orden de alta.
func (uc *UseCase) List(ctx context.Context, f dto.CatalogFilter) (*dto.CatalogListResponse, error) {
	out := &dto.CatalogListResponse{Items: []entity.CatalogItem{}}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, it := range agg.CatalogItems() {
			if f.Category != "" && !strings.EqualFold(it.Category, f.Category) {
				continue
			}
			if f.Perishable != nil && it.Perishable != *f.Perishable {
				continue
			}
			if !textnorm.Contains(f.Query, it.SKU, it.Name, it.Category, it.Barcode) {
				continue
			}
			out.Items = append(out.Items, it)
		}
		out.Total = len(out.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SeedDefaults carga el catálogo inicial, su lote de ejemplo y los directorios de categorías,
// socios y transportistas si el almacén está vacío. Devuelve true si sembró datos.
func (uc *UseCase) SeedDefaults(ctx context.Context) (bool, error) {
	seeded := false
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if agg.Version > 0 || len(agg.CatalogItems()) > 0 {
			return nil
		}
		agg.AddCatalogItem(entity.CatalogItem{
			ID: uc.newID(), SKU: "PROD-001", Name: "Pallets Plásticos HD", Category: "Almacenamiento",
			Barcode: "7750001001", Status: entity.CatalogStatusActive,
		})
		agg.AddCatalogItem(entity.CatalogItem{
			ID: uc.newID(), SKU: "PROD-002", Name: "Film Stretch 50cm", Category: "Embalaje",
			Barcode: "7750001002", Perishable: true, Status: entity.CatalogStatusActive,
		})
		agg.Batches.Add(inventory.BatchInput{
			SKU: "PROD-002", LotNumber: "L-2024001",
			ExpiryDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			OriginalQuantity: 100,
		})
		uc.seedDirectories(agg)
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		uc.log.Info().Msg("datos iniciales cargados")
	}
	return seeded, nil
}

func (uc *UseCase) seedDirectories(agg *inventory.Aggregate) {
	now := uc.now()
	for _, c := range [][2]string{
		{DefaultCategory, "Categoría por defecto"},
		{"Almacenamiento", "Pallets, Racks, Cajas"},
		{"Embalaje", "Films, Cintas, Zunchos"},
		{"Protección", "Guantes, Cascos, Lentes"},
	} {
		agg.Categories = append(agg.Categories, entity.Category{
			ID: uc.newID(), Name: c[0], Description: c[1], Status: entity.CatalogStatusActive, CreatedAt: now,
		})
	}
	agg.Partners = append(agg.Partners,
		entity.Partner{ID: uc.newID(), Name: "KOTECO SA", Kind: entity.PartnerKindClient, TaxID: "20501234567",
			Phone: "01-444-5555", Email: "contacto@koteco.com", Address: "Av. Industrial 123", Status: entity.CatalogStatusActive, CreatedAt: now},
		entity.Partner{ID: uc.newID(), Name: "PLASTICOS DEL SUR", Kind: entity.PartnerKindSupplier, TaxID: "20109876543",
			Phone: "01-222-3333", Email: "ventas@plasticos.com", Address: "Calle Los Hornos 456", Status: entity.CatalogStatusActive, CreatedAt: now},
	)
	agg.Carriers = append(agg.Carriers,
		entity.Carrier{ID: uc.newID(), Name: "EXPRESO MARVISUR", TaxID: "20501234500", Plate: "V1Z-980",
			Driver: "Juan Perez", Phone: "988-777-666", Status: entity.CatalogStatusActive, CreatedAt: now},
	)
}
