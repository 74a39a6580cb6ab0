package inventory

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// TransferInput datos de un traslado. DestinationWarehouse solo aplica a traslados locales;
// ExternalDestination describe el destino de uno externo.
type TransferInput struct {
	SKU                  string
	Quantity             int
	OriginWarehouse      string
	OriginLocation       string
	DestinationWarehouse string
	DestinationLocation  string
	ExternalDestination  string
	IsLocal              bool
	Meta                 entity.MovementMeta
}

// TransferDetails construye la variante de traslado correspondiente.
func TransferDetails(in TransferInput) entity.MovementDetails {
	if in.IsLocal {
		return entity.LocalTransferDetails{
			OriginLocation:       in.OriginLocation,
			DestinationWarehouse: in.DestinationWarehouse,
			DestinationLocation:  in.DestinationLocation,
		}
	}
	return entity.ExternalTransferDetails{
		OriginLocation:      in.OriginLocation,
		ExternalDestination: in.ExternalDestination,
	}
}

// RegisterTransfer registra un único movimiento de traslado con dos patas coordinadas:
// débito en origen y, si es local con bodega destino, crédito en destino. Un traslado
// externo solo descuenta en origen porque la mercadería sale del inventario controlado.
func (l *Ledger) RegisterTransfer(in TransferInput) (entity.MovementRecord, []AppliedEffect) {
	return l.Register(MovementInput{
		SKU:       in.SKU,
		Quantity:  in.Quantity,
		Warehouse: in.OriginWarehouse,
		Meta:      in.Meta,
		Details:   TransferDetails(in),
	})
}
