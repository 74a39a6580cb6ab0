// Package directory mantiene los maestros auxiliares del inventario: socios comerciales
// (clientes y proveedores), transportistas y categorías del catálogo.
package directory

import (
	"strings"

	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

func trimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func parseStatus(dst *string, v *string) error {
	if v == nil {
		return nil
	}
	st := strings.ToLower(strings.TrimSpace(*v))
	if st != entity.CatalogStatusActive && st != entity.CatalogStatusInactive {
		return domain.Invalid("status", "estado inválido")
	}
	*dst = st
	return nil
}

func matchesStatus(filter, status string) bool {
	return filter == "" || strings.EqualFold(filter, status)
}
