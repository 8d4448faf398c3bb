package dto

import (
	"strconv"
	"strings"
)

// FlexibleInt acepta en JSON un número, un string numérico o basura: lo que no
// parsea como número vale 0. Replica el comportamiento de los inputs de la UI,
// donde un campo vacío o no numérico se trata como cantidad 0.
type FlexibleInt int

// UnmarshalJSON nunca falla: el valor inválido se coerciona a 0.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	// Strings tipo " 7": el espacio interior a las comillas también se ignora
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexibleInt(n)
		return nil
	}
	// Entradas tipo "3.7": truncar como parseInt
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexibleInt(int(fl))
		return nil
	}
	*f = 0
	return nil
}

// SetStockRequest cuerpo de PUT /api/inventory/:productId/stock.
type SetStockRequest struct {
	Stock FlexibleInt `json:"stock"`
}

// SetQuantityRequest cuerpo de PUT /api/inventory/:productId/quantity.
type SetQuantityRequest struct {
	Quantity FlexibleInt `json:"quantity"`
}

// SwitchBranchRequest cuerpo de PUT /api/branches/active.
type SwitchBranchRequest struct {
	BranchID string `json:"branch_id"`
}
