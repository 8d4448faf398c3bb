package entity

// Branch representa una sucursal física de la cadena.
// El inventario y las órdenes de compra se particionan por sucursal.
type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
