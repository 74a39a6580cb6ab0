package inventory

// WarehouseDirectory lista ordenada de bodegas controladas por el sistema.
type WarehouseDirectory []string

// Contains indica si name es una bodega del directorio.
func (d WarehouseDirectory) Contains(name string) bool {
	for _, w := range d {
		if w == name {
			return true
		}
	}
	return false
}

