package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
	"github.com/batmanhot/logistica-inventario/pkg/textnorm"
)

// CategoryUseCase categorías del catálogo. Los productos guardan el nombre de la categoría.
type CategoryUseCase struct {
	runner appinventory.StateRunner
	newID  inventory.IDGenerator
	now    inventory.Clock
	log    *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(runner appinventory.StateRunner, newID inventory.IDGenerator, now inventory.Clock, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{runner: runner, newID: newID, now: now, log: log.Component("categories")}
}

// Create registra una categoría. El nombre no se repite (sin distinguir mayúsculas ni tildes).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	c := entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Status:      entity.CatalogStatusActive,
	}
	if c.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if err := checkCategoryName(agg.Categories, c.Name, ""); err != nil {
			return err
		}
		c.ID = uc.newID()
		c.CreatedAt = uc.now()
		agg.Categories = append(agg.Categories, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", c.ID).Str("name", c.Name).Msg("categoría creada")
	return &c, nil
}

// Update edita una categoría. Si cambia el nombre, los productos que la usaban pasan al nuevo.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	var out entity.Category
	renamed := 0
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := categoryIndex(agg.Categories, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		c := agg.Categories[i]
		oldName := c.Name
		trimmed(&c.Name, in.Name)
		trimmed(&c.Description, in.Description)
		if err := parseStatus(&c.Status, in.Status); err != nil {
			return err
		}
		if c.Name == "" {
			return domain.Invalid("name", "el nombre es obligatorio")
		}
		if err := checkCategoryName(agg.Categories, c.Name, id); err != nil {
			return err
		}
		if c.Name != oldName {
			for _, it := range agg.CatalogItems() {
				if it.Category == oldName {
					it.Category = c.Name
					agg.UpdateCatalogItem(it)
					renamed++
				}
			}
		}
		agg.Categories[i] = c
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", id).Int("products_renamed", renamed).Msg("categoría actualizada")
	return &out, nil
}

// Delete elimina una categoría que ningún producto usa.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := categoryIndex(agg.Categories, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		name := agg.Categories[i].Name
		for _, it := range agg.CatalogItems() {
			if it.Category == name {
				return fmt.Errorf("%w: la categoría %s está asignada a %s", domain.ErrConflict, name, it.SKU)
			}
		}
		agg.Categories = append(agg.Categories[:i:i], agg.Categories[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("category_id", id).Msg("categoría eliminada")
	return nil
}

// List devuelve las categorías en orden de alta.
func (uc *CategoryUseCase) List(ctx context.Context, f dto.DirectoryFilter) ([]entity.Category, error) {
	out := []entity.Category{}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, c := range agg.Categories {
			if matchesStatus(f.Status, c.Status) && textnorm.Contains(f.Query, c.Name, c.Description) {
				out = append(out, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkCategoryName(categories []entity.Category, name, selfID string) error {
	folded := textnorm.Fold(name)
	for _, o := range categories {
		if o.ID != selfID && textnorm.Fold(o.Name) == folded {
			return fmt.Errorf("%w: ya existe una categoría con este nombre", domain.ErrDuplicate)
		}
	}
	return nil
}

func categoryIndex(categories []entity.Category, id string) int {
	for i := range categories {
		if categories[i].ID == id {
			return i
		}
	}
	return -1
}
