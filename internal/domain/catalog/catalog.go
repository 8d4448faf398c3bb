// Package catalog define el catálogo fijo de productos y el registro de
// sucursales de la cadena. Ambos son datos estáticos: nunca se mutan en
// runtime y son compartidos por todas las sucursales.
package catalog

import "github.com/hendaya/pedidos-api/internal/domain/entity"

// FallbackPrefix se usa en el folio cuando la sucursal no tiene prefijo configurado.
const FallbackPrefix = "GEN"

// Branches sucursales registradas, en orden de presentación.
// La primera es la sucursal activa por defecto.
var Branches = []entity.Branch{
	{ID: "hendaya", Name: "Hendaya"},
	{ID: "las_condes", Name: "Las Condes"},
	{ID: "la_dehesa", Name: "La Dehesa"},
	{ID: "san_miguel", Name: "San Miguel"},
	{ID: "antofagasta", Name: "Antofagasta"},
}

// branchPrefixes prefijo de folio por sucursal.
var branchPrefixes = map[string]string{
	"hendaya":     "HEN",
	"las_condes":  "LCO",
	"la_dehesa":   "LDE",
	"san_miguel":  "SMI",
	"antofagasta": "ANT",
}

// Products catálogo completo en orden de presentación.
var Products = []entity.Product{
	// OFICINA
	{ID: "off-1", Name: "Papel Fotocopia Carta", Category: entity.CategoryOficina},
	{ID: "off-2", Name: "Papel Fotocopia Oficio", Category: entity.CategoryOficina},
	{ID: "off-3", Name: "Corchetes", Category: entity.CategoryOficina},
	{ID: "off-4", Name: "Corchetera", Category: entity.CategoryOficina},
	{ID: "off-5", Name: "Cuadernos", Category: entity.CategoryOficina},
	{ID: "off-6", Name: "Lápiz Pasta", Category: entity.CategoryOficina},
	{ID: "off-7", Name: "Plumón Azul", Category: entity.CategoryOficina},
	{ID: "off-8", Name: "Plumón Rojo", Category: entity.CategoryOficina},
	{ID: "off-9", Name: "Plumón Verde", Category: entity.CategoryOficina},
	{ID: "off-10", Name: "Plumón Negro", Category: entity.CategoryOficina},
	{ID: "off-11", Name: "Destacador", Category: entity.CategoryOficina},
	{ID: "off-12", Name: "Visores", Category: entity.CategoryOficina},
	{ID: "off-13", Name: "Carpetas colgantes", Category: entity.CategoryOficina},
	{ID: "off-14", Name: "Perforadora", Category: entity.CategoryOficina},
	{ID: "off-15", Name: "Post It 76 x 76 MM", Category: entity.CategoryOficina},
	{ID: "off-16", Name: "Cinta Adhesiva 18 MM", Category: entity.CategoryOficina},
	{ID: "off-17", Name: "Corrector", Category: entity.CategoryOficina},
	{ID: "off-18", Name: "Tinta huellero", Category: entity.CategoryOficina},
	{ID: "off-19", Name: "Tampón circular", Category: entity.CategoryOficina},
	{ID: "off-20", Name: "Tijeras", Category: entity.CategoryOficina},
	{ID: "off-22", Name: "Clips 1 Pulgada (Grandes)", Category: entity.CategoryOficina},
	{ID: "off-21", Name: "Clips 33 MM (PEQUEÑOS)", Category: entity.CategoryOficina},

	// ASEO
	{ID: "ase-1", Name: "Cloro Gel", Category: entity.CategoryAseo},
	{ID: "ase-2", Name: "Cloro Líquido", Category: entity.CategoryAseo},
	{ID: "ase-3", Name: "Jabón líquido", Category: entity.CategoryAseo},
	{ID: "ase-4", Name: "Bolsas 50x70", Category: entity.CategoryAseo},
	{ID: "ase-5", Name: "Bolsas 70x90", Category: entity.CategoryAseo},
	{ID: "ase-6", Name: "Bolsas 80x110", Category: entity.CategoryAseo},
	{ID: "ase-7", Name: "Bolsas Basureros", Category: entity.CategoryAseo},
	{ID: "ase-8", Name: "Trape. Micro. con ojal colores", Category: entity.CategoryAseo},
	{ID: "ase-9", Name: "Cif", Category: entity.CategoryAseo},
	{ID: "ase-10", Name: "Limpia Vidrios", Category: entity.CategoryAseo},
	{ID: "ase-new-1", Name: "Plumero", Category: entity.CategoryAseo},
	{ID: "ase-12", Name: "Desengrasante", Category: entity.CategoryAseo},
	{ID: "ase-13", Name: "Lavaloza", Category: entity.CategoryAseo},
	{ID: "ase-14", Name: "Limpiador de piso", Category: entity.CategoryAseo},
	{ID: "ase-15", Name: "Desinfectante ambiental 360 c/c", Category: entity.CategoryAseo},
	{ID: "ase-16", Name: "Esponja", Category: entity.CategoryAseo},
	{ID: "ase-17", Name: "Traperos Húmedos x 10 Uni.", Category: entity.CategoryAseo},
	{ID: "ase-18", Name: "Guante Látex amarillos cocina", Category: entity.CategoryAseo},
	{ID: "ase-19", Name: "Guante nitrilo Talla S", Category: entity.CategoryAseo},
	{ID: "ase-20", Name: "Guantes nitrilo Talla M", Category: entity.CategoryAseo},
	{ID: "ase-new-2", Name: "Guantes nitrilo Talla L", Category: entity.CategoryAseo},
	{ID: "ase-21", Name: "Esponja Abrasiva", Category: entity.CategoryAseo},
	{ID: "ase-22", Name: "Alcohol al 70%", Category: entity.CategoryAseo},
	{ID: "ase-23", Name: "Mascarillas", Category: entity.CategoryAseo},
	{ID: "ase-24", Name: "Pilas AA", Category: entity.CategoryAseo},
	{ID: "ase-25", Name: "Pilas AAA", Category: entity.CategoryAseo},
	{ID: "ase-11", Name: "Escoba", Category: entity.CategoryAseo},
	{ID: "ase-27", Name: "Pala", Category: entity.CategoryAseo},
	{ID: "ase-28", Name: "Detergente ropa", Category: entity.CategoryAseo},
	{ID: "ase-29", Name: "Suavizante ropa", Category: entity.CategoryAseo},
	{ID: "ase-30", Name: "Neutralizador", Category: entity.CategoryAseo},
	{ID: "ase-31", Name: "Pañuelos desechables", Category: entity.CategoryAseo},
	{ID: "ase-32", Name: "Pétalos", Category: entity.CategoryAseo},

	// COCINA
	{ID: "coc-1", Name: "Café 400 grs", Category: entity.CategoryCocina},
	{ID: "coc-2", Name: "Té", Category: entity.CategoryCocina},
	{ID: "coc-3", Name: "Azúcar", Category: entity.CategoryCocina},
	{ID: "coc-4", Name: "Endulzante", Category: entity.CategoryCocina},
	{ID: "coc-5", Name: "Te de hierbas", Category: entity.CategoryCocina},

	// PAPELERIA
	{ID: "pap-1", Name: "Interfoliado", Category: entity.CategoryPapeleria},
	{ID: "pap-2", Name: "Toalla Papel Jumbo", Category: entity.CategoryPapeleria},
	{ID: "pap-3", Name: "Sabanillas", Category: entity.CategoryPapeleria},
	{ID: "pap-4", Name: "Papel higiénico 50 mts", Category: entity.CategoryPapeleria},
	{ID: "pap-5", Name: "Toallitas desmaquillantes", Category: entity.CategoryPapeleria},
	{ID: "pap-6", Name: "Papel higiénico Jumbo (dispensador)", Category: entity.CategoryPapeleria},
}

// DefaultBranch devuelve la sucursal activa por defecto (la primera registrada).
func DefaultBranch() entity.Branch {
	return Branches[0]
}

// FindBranch busca una sucursal por su ID.
func FindBranch(id string) (entity.Branch, bool) {
	for _, b := range Branches {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Branch{}, false
}

// PrefixFor devuelve el prefijo de folio de la sucursal, o FallbackPrefix
// si no tiene uno configurado.
func PrefixFor(branchID string) string {
	if p, ok := branchPrefixes[branchID]; ok {
		return p
	}
	return FallbackPrefix
}

// FindProduct busca un producto del catálogo por su ID.
func FindProduct(id string) (entity.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}
