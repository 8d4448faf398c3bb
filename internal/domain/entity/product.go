package entity

// Category clasifica los productos del catálogo en las cuatro pestañas de la app.
type Category string

const (
	CategoryOficina   Category = "OFICINA"
	CategoryAseo      Category = "ASEO"
	CategoryCocina    Category = "COCINA"
	CategoryPapeleria Category = "PAPELERIA"
)

// Categories en el orden en que se muestran.
var Categories = []Category{CategoryOficina, CategoryAseo, CategoryCocina, CategoryPapeleria}

// Valid indica si la categoría es una de las cuatro fijas.
func (c Category) Valid() bool {
	switch c {
	case CategoryOficina, CategoryAseo, CategoryCocina, CategoryPapeleria:
		return true
	}
	return false
}

// Product representa un producto del catálogo fijo. Inmutable en runtime:
// el stock y la cantidad a pedir viven aparte, por sucursal.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}
