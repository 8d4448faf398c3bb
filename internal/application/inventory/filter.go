package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hendaya/pedidos-api/internal/domain/entity"
)

// Filter devuelve las entradas de la vista que cumplen ambos criterios:
// igualdad de categoría (vacía = todas) y coincidencia de substring en el
// nombre, sin distinguir mayúsculas ni tildes. No muta la vista.
func (s *Store) Filter(category entity.Category, search string) []entity.ViewEntry {
	view := s.View()
	needle := fold(search)

	out := make([]entity.ViewEntry, 0, len(view))
	for _, e := range view {
		if category != "" && e.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(fold(e.Name), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary contadores de la vista actual: ítems con cantidad a pedir, total de
// unidades a pedir y productos con stock bajo (< 5).
type Summary struct {
	ItemsInOrder int `json:"items_in_order"`
	TotalUnits   int `json:"total_units"`
	LowStock     int `json:"low_stock"`
}

// Summarize calcula los contadores sobre la vista de trabajo actual.
func (s *Store) Summarize() Summary {
	var sum Summary
	for _, e := range s.View() {
		if e.Quantity > 0 {
			sum.ItemsInOrder++
			sum.TotalUnits += e.Quantity
		}
		if e.Stock < lowStockThreshold {
			sum.LowStock++
		}
	}
	return sum
}

// fold normaliza para búsqueda: minúsculas y sin marcas diacríticas, de modo
// que "lapiz" encuentre "Lápiz Pasta". El catálogo es texto en español.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
