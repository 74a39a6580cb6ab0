package inventory

import "github.com/batmanhot/logistica-inventario/internal/domain/entity"

// Shortfall slot que quedaría negativo.
type Shortfall struct {
	Key       entity.SlotKey
	Available int // existencia actual más lo que la operación devuelve al slot
	Requested int // lo que la operación retira del slot
}

// Shortfalls valida disponibilidad antes de mutar. revert son los efectos del movimiento
// que se deshace (nil al registrar) y apply los del que se aplica (nil al eliminar).
// Se revisan todos los slots que tocan ambos lados, de modo que una edición no puede dejar
// negativo un slot que solo debita la reversión.
func Shortfalls(s *Snapshot, revert, apply []Effect) []Shortfall {
	type flow struct{ in, out int }
	flows := make(map[entity.SlotKey]*flow)
	var order []entity.SlotKey
	add := func(k entity.SlotKey, delta int) {
		f, ok := flows[k]
		if !ok {
			f = &flow{}
			flows[k] = f
			order = append(order, k)
		}
		if delta >= 0 {
			f.in += delta
		} else {
			f.out -= delta
		}
	}
	for _, e := range Inverse(revert) {
		add(e.Key, e.Delta)
	}
	for _, e := range apply {
		add(e.Key, e.Delta)
	}

	var out []Shortfall
	for _, k := range order {
		f := flows[k]
		if f.in >= f.out {
			continue
		}
		available := s.Quantity(k) + f.in
		if available < f.out {
			out = append(out, Shortfall{Key: k, Available: available, Requested: f.out})
		}
	}
	return out
}
