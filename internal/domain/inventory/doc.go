// Package inventory contiene el núcleo del libro de stock: el snapshot por
// (sku, bodega, ubicación) con su único primitivo de mutación, el historial de
// movimientos con compensación en ediciones y eliminaciones, los traslados,
// el estado de lotes perecibles y la proyección de capacidad por ubicación.
//
// El paquete es determinista: el reloj y el generador de IDs se inyectan y no
// hay E/S. La persistencia y la validación previa son responsabilidad del caller.
package inventory
