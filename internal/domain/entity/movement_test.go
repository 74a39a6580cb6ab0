package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batmanhot/logistica-inventario/internal/domain/entity"
)

func TestMovementRecord_DecodificaTrasladoLocal(t *testing.T) {
	raw := `{
		"id": "m1", "timestamp": "2024-06-01T10:00:00Z", "sku": "PROD-001", "quantity": 20,
		"warehouse": "Central", "kind": "TRANSFER", "subtype": "LOCAL", "meta": {"carrier": "Olva"},
		"details": {"destination_warehouse": "Norte", "destination_location": "B-02"}
	}`

	var m entity.MovementRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	d, ok := m.Details.(entity.LocalTransferDetails)
	require.True(t, ok, "la variante debe ser traslado local")
	assert.Equal(t, "Norte", d.DestinationWarehouse)
	assert.Equal(t, "B-02", d.DestinationLocation)
	assert.Equal(t, "Olva", m.Meta.Carrier)
	assert.Equal(t, "Norte", m.DestinationWarehouse())
}

func TestMovementRecord_RechazaCombinacionInvalida(t *testing.T) {
	for _, raw := range []string{
		`{"id":"m1","kind":"IN","subtype":"LOCAL","details":{}}`,
		`{"id":"m2","kind":"TRANSFER","details":{}}`,
		`{"id":"m3","kind":"ADJUST","details":{}}`,
	} {
		var m entity.MovementRecord
		assert.Error(t, json.Unmarshal([]byte(raw), &m), raw)
	}
}

func TestMovementRecord_SinDetalleNoSerializa(t *testing.T) {
	_, err := json.Marshal(entity.MovementRecord{ID: "m1"})
	assert.Error(t, err)
}

func TestMovementRecord_ConservaConsumosDeLotes(t *testing.T) {
	in := entity.MovementRecord{
		ID: "m1", SKU: "PROD-002", Quantity: 7, Warehouse: "Central",
		Details:   entity.OutboundDetails{},
		BatchUses: []entity.BatchConsumption{{BatchID: "b1", LotNumber: "L-1", Quantity: 7}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"batch_uses":[{"batch_id":"b1","lot_number":"L-1","quantity":7}]`)

	var out entity.MovementRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.BatchUses, out.BatchUses)
}
