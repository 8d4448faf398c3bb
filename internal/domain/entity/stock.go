package entity

// StockRecord es el registro persistido de stock de un producto en una sucursal.
// Los productos sin registro se asumen con stock 0.
type StockRecord struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}

// OrderLine es una línea de la orden en curso de una sucursal.
// Solo se persisten líneas con Quantity > 0; cantidad 0 equivale a omisión.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ViewEntry es la vista de trabajo en memoria: el producto del catálogo unido
// con su stock actual y su cantidad a pedir para la sucursal activa.
// Siempre existe una entrada por producto del catálogo, tenga o no registros.
type ViewEntry struct {
	Product
	Stock    int `json:"stock"`
	Quantity int `json:"quantity"`
}
