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

// PartnerUseCase directorio de clientes y proveedores.
type PartnerUseCase struct {
	runner appinventory.StateRunner
	newID  inventory.IDGenerator
	now    inventory.Clock
	log    *logger.Logger
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(runner appinventory.StateRunner, newID inventory.IDGenerator, now inventory.Clock, log *logger.Logger) *PartnerUseCase {
	return &PartnerUseCase{runner: runner, newID: newID, now: now, log: log.Component("partners")}
}

// ParsePartnerKind acepta CLIENT/SUPPLIER y sus equivalentes en castellano.
func ParsePartnerKind(s string) (entity.PartnerKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "CLIENT", "CLIENTE":
		return entity.PartnerKindClient, nil
	case "SUPPLIER", "PROVEEDOR":
		return entity.PartnerKindSupplier, nil
	}
	return "", domain.Invalid("kind", "tipo de socio inválido")
}

// Create registra un socio. Nombre y RUC obligatorios; el RUC no se repite dentro del mismo tipo.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*entity.Partner, error) {
	kind, err := ParsePartnerKind(in.Kind)
	if err != nil {
		return nil, err
	}
	p := entity.Partner{
		Name:    strings.TrimSpace(in.Name),
		Kind:    kind,
		TaxID:   strings.TrimSpace(in.TaxID),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
		Status:  entity.CatalogStatusActive,
	}
	if err := validatePartner(p); err != nil {
		return nil, err
	}
	err = uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		if err := checkTaxID(agg.Partners, p, ""); err != nil {
			return err
		}
		p.ID = uc.newID()
		p.CreatedAt = uc.now()
		agg.Partners = append([]entity.Partner{p}, agg.Partners...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("partner_id", p.ID).Str("kind", string(p.Kind)).Msg("socio registrado")
	return &p, nil
}

// Update edita un socio.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) (*entity.Partner, error) {
	var out entity.Partner
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := partnerIndex(agg.Partners, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		p := agg.Partners[i]
		if in.Kind != nil {
			kind, err := ParsePartnerKind(*in.Kind)
			if err != nil {
				return err
			}
			p.Kind = kind
		}
		trimmed(&p.Name, in.Name)
		trimmed(&p.TaxID, in.TaxID)
		trimmed(&p.Phone, in.Phone)
		trimmed(&p.Email, in.Email)
		trimmed(&p.Address, in.Address)
		if err := parseStatus(&p.Status, in.Status); err != nil {
			return err
		}
		if err := validatePartner(p); err != nil {
			return err
		}
		if err := checkTaxID(agg.Partners, p, id); err != nil {
			return err
		}
		agg.Partners[i] = p
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("partner_id", id).Msg("socio actualizado")
	return &out, nil
}

// Delete elimina un socio. Los movimientos que lo nombran conservan el texto.
func (uc *PartnerUseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.Run(ctx, func(agg *inventory.Aggregate) error {
		i := partnerIndex(agg.Partners, id)
		if i < 0 {
			return domain.ErrNotFound
		}
		agg.Partners = append(agg.Partners[:i:i], agg.Partners[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("partner_id", id).Msg("socio eliminado")
	return nil
}

// List devuelve los socios filtrados, el más reciente primero.
func (uc *PartnerUseCase) List(ctx context.Context, f dto.DirectoryFilter) ([]entity.Partner, error) {
	var kind entity.PartnerKind
	if f.Kind != "" {
		k, err := ParsePartnerKind(f.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	out := []entity.Partner{}
	err := uc.runner.Read(ctx, func(agg *inventory.Aggregate) error {
		for _, p := range agg.Partners {
			if kind != "" && p.Kind != kind {
				continue
			}
			if !matchesStatus(f.Status, p.Status) || !textnorm.Contains(f.Query, p.Name, p.TaxID) {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clients atajo para los clientes.
func (uc *PartnerUseCase) Clients(ctx context.Context) ([]entity.Partner, error) {
	return uc.List(ctx, dto.DirectoryFilter{Kind: string(entity.PartnerKindClient)})
}

// Suppliers atajo para los proveedores.
func (uc *PartnerUseCase) Suppliers(ctx context.Context) ([]entity.Partner, error) {
	return uc.List(ctx, dto.DirectoryFilter{Kind: string(entity.PartnerKindSupplier)})
}

func validatePartner(p entity.Partner) error {
	if p.Name == "" {
		return domain.Invalid("name", "el nombre es obligatorio")
	}
	if p.TaxID == "" {
		return domain.Invalid("tax_id", "el RUC es obligatorio")
	}
	return nil
}

func checkTaxID(partners []entity.Partner, p entity.Partner, selfID string) error {
	for _, o := range partners {
		if o.ID != selfID && o.Kind == p.Kind && o.TaxID == p.TaxID {
			return fmt.Errorf("%w: ya existe un socio con RUC %s", domain.ErrDuplicate, p.TaxID)
		}
	}
	return nil
}

func partnerIndex(partners []entity.Partner, id string) int {
	for i := range partners {
		if partners[i].ID == id {
			return i
		}
	}
	return -1
}
