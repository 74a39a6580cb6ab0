package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSameWarehouse     = errors.New("origen y destino no pueden ser el mismo")
	ErrUnknownSKU        = errors.New("el SKU no existe en el catálogo")
	ErrUnknownWarehouse  = errors.New("bodega desconocida")
	ErrUnknownLocation   = errors.New("ubicación desconocida")
)

// ValidationError describe un dato de entrada rechazado antes de cualquier mutación.
// Se compara con errors.Is contra ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StockError detalla un faltante de stock; errors.Is(err, ErrInsufficientStock) es verdadero.
type StockError struct {
	SKU       string
	Warehouse string
	Location  string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Disponible: %d unidades.", e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
