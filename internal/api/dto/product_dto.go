package dto

// ProductRequest payload for create and update.
type ProductRequest struct {
	Name          string  `json:"nombre"`
	Description   string  `json:"descripcion"`
	PurchasePrice float64 `json:"precio_compra"`
	SalePrice     float64 `json:"precio_venta"`
	Stock         int     `json:"stock"`
	CategoryCode  int     `json:"cod_categoria"`
	LineCode      int     `json:"cod_linea"`
	Status        string  `json:"estado"`
}

// StockUpdateRequest payload for PUT /productos/:cod/stock.
type StockUpdateRequest struct {
	NewStock int `json:"nuevo_stock"`
}
