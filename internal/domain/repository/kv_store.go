package repository

import "context"

// KVStore contrato de persistencia clave-valor del sistema. Los documentos de
// inventario y orden en curso, el contador de folios y la sucursal seleccionada
// se guardan como strings bajo claves particionadas por sucursal.
type KVStore interface {
	// Get devuelve el valor de la clave. ok es false si la clave no existe;
	// la ausencia no es un error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set escribe (o sobreescribe) el valor de la clave.
	Set(ctx context.Context, key, value string) error
}

// SelectedBranchKey clave global con el ID de la sucursal activa.
const SelectedBranchKey = "hendaya_selected_branch_id"

// InventoryKey clave del documento de stock de una sucursal.
func InventoryKey(branchID string) string { return branchID + "_inventory" }

// CurrentOrderKey clave del documento de orden en curso de una sucursal.
func CurrentOrderKey(branchID string) string { return branchID + "_current_order" }

// SequenceKey clave del contador de folios de una sucursal.
func SequenceKey(branchID string) string { return "po_sequence_" + branchID }
