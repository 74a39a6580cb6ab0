package inventory

import (
	"strings"
	"time"

	"github.com/batmanhot/logistica-inventario/internal/application/dto"
	"github.com/batmanhot/logistica-inventario/internal/domain"
	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
)

// ToMovementResponse aplana un registro para la API.
func ToMovementResponse(rec entity.MovementRecord, catalog inventory.CatalogLookup) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:              rec.ID,
		Timestamp:       rec.Timestamp,
		Kind:            string(rec.Kind()),
		Subtype:         string(rec.Subtype()),
		SKU:             rec.SKU,
		Quantity:        rec.Quantity,
		Warehouse:       rec.Warehouse,
		MovementMetaDTO: metaDTO(rec.Meta),
		BatchUses:       rec.BatchUses,
	}
	if catalog != nil {
		if it, ok := catalog.FindBySKU(rec.SKU); ok {
			out.ProductName = it.Name
		}
	}
	switch d := rec.Details.(type) {
	case entity.InboundDetails:
		out.Location = d.Location
		out.EntryType = d.EntryType
	case entity.OutboundDetails:
		out.Location = d.Location
	case entity.LocalTransferDetails:
		out.Location = d.OriginLocation
		out.DestinationWarehouse = d.DestinationWarehouse
		out.DestinationLocation = d.DestinationLocation
	case entity.ExternalTransferDetails:
		out.Location = d.OriginLocation
		out.ExternalDestination = d.ExternalDestination
	}
	return out
}

func metaDTO(m entity.MovementMeta) dto.MovementMetaDTO {
	out := dto.MovementMetaDTO{
		Counterparty:   m.Counterparty,
		DocumentType:   m.DocumentType,
		DocumentNumber: m.DocumentNumber,
		Carrier:        m.Carrier,
		Notes:          m.Notes,
	}
	if m.DocumentDate != nil {
		out.DocumentDate = m.DocumentDate.Format(dto.DateLayout)
	}
	return out
}

func parseMeta(in dto.MovementMetaDTO) (entity.MovementMeta, error) {
	m := entity.MovementMeta{
		Counterparty:   strings.TrimSpace(in.Counterparty),
		DocumentType:   strings.TrimSpace(in.DocumentType),
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		Carrier:        strings.TrimSpace(in.Carrier),
		Notes:          strings.TrimSpace(in.Notes),
	}
	if in.DocumentDate != "" {
		d, err := time.Parse(dto.DateLayout, in.DocumentDate)
		if err != nil {
			return entity.MovementMeta{}, domain.Invalid("document_date", "formato esperado YYYY-MM-DD")
		}
		m.DocumentDate = &d
	}
	return m, nil
}

// patchDetails aplica los cambios del request sobre la variante original. Si el request
// indica otro tipo (o cambia is_local), arma la variante nueva conservando la ubicación de
// origen. Devuelve nil si el request no toca el ruteo.
func patchDetails(old entity.MovementDetails, in dto.UpdateMovementRequest) (entity.MovementDetails, error) {
	kind := old.Kind()
	if in.Kind != nil {
		kind = entity.MovementKind(strings.ToUpper(strings.TrimSpace(*in.Kind)))
		switch kind {
		case entity.MovementKindInbound, entity.MovementKindOutbound, entity.MovementKindTransfer:
		default:
			return nil, domain.Invalid("kind", "tipo de movimiento desconocido")
		}
	}
	if kind != old.Kind() {
		return convertDetails(old, kind, in), nil
	}

	set := func(dst *string, v *string) bool {
		if v == nil {
			return false
		}
		*dst = strings.TrimSpace(*v)
		return true
	}
	changed := false
	switch d := old.(type) {
	case entity.InboundDetails:
		changed = set(&d.Location, in.Location) || changed
		changed = set(&d.EntryType, in.EntryType) || changed
		if changed {
			return d, nil
		}
	case entity.OutboundDetails:
		if set(&d.Location, in.Location) {
			return d, nil
		}
	case entity.LocalTransferDetails:
		if in.IsLocal != nil && !*in.IsLocal {
			return convertDetails(old, entity.MovementKindTransfer, in), nil
		}
		changed = set(&d.OriginLocation, in.Location) || changed
		changed = set(&d.DestinationWarehouse, in.DestinationWarehouse) || changed
		changed = set(&d.DestinationLocation, in.DestinationLocation) || changed
		if changed {
			return d, nil
		}
	case entity.ExternalTransferDetails:
		if in.IsLocal != nil && *in.IsLocal {
			return convertDetails(old, entity.MovementKindTransfer, in), nil
		}
		changed = set(&d.OriginLocation, in.Location) || changed
		changed = set(&d.ExternalDestination, in.ExternalDestination) || changed
		if changed {
			return d, nil
		}
	}
	return nil, nil
}

// convertDetails arma una variante de otro tipo. Un traslado es local salvo que el request
// diga is_local=false o, sin is_local, traiga solo destino externo.
func convertDetails(old entity.MovementDetails, kind entity.MovementKind, in dto.UpdateMovementRequest) entity.MovementDetails {
	location := originLocation(old)
	if in.Location != nil {
		location = strings.TrimSpace(*in.Location)
	}
	val := func(v *string) string {
		if v == nil {
			return ""
		}
		return strings.TrimSpace(*v)
	}

	switch kind {
	case entity.MovementKindInbound:
		return entity.InboundDetails{Location: location, EntryType: val(in.EntryType)}
	case entity.MovementKindOutbound:
		return entity.OutboundDetails{Location: location}
	}

	local := in.ExternalDestination == nil
	if in.IsLocal != nil {
		local = *in.IsLocal
	}
	if !local {
		return entity.ExternalTransferDetails{OriginLocation: location, ExternalDestination: val(in.ExternalDestination)}
	}
	return entity.LocalTransferDetails{
		OriginLocation:       location,
		DestinationWarehouse: val(in.DestinationWarehouse),
		DestinationLocation:  val(in.DestinationLocation),
	}
}

func originLocation(d entity.MovementDetails) string {
	switch v := d.(type) {
	case entity.InboundDetails:
		return v.Location
	case entity.OutboundDetails:
		return v.Location
	case entity.LocalTransferDetails:
		return v.OriginLocation
	case entity.ExternalTransferDetails:
		return v.OriginLocation
	}
	return ""
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
