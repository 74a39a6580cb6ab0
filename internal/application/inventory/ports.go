package inventory

import (
	"context"

	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

// StateRunner ejecuta funciones sobre el agregado de inventario con un único escritor.
//
// Run carga el agregado, ejecuta fn y, si fn no falla, guarda el agregado completo en una sola
// escritura. Si fn devuelve error nada se persiste. Read no guarda.
type StateRunner interface {
	Read(ctx context.Context, fn func(agg *inventory.Aggregate) error) error
	Run(ctx context.Context, fn func(agg *inventory.Aggregate) error) error
}
