package domain

// ProductStatus mirrors the estado column of productos.
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "disponible"
	ProductStatusSoldOut   ProductStatus = "agotado"
)

// Product is a catalog item.
type Product struct {
	ProductCode   int           `json:"cod_producto"`
	Name          string        `json:"nombre"`
	Description   string        `json:"descripcion"`
	PurchasePrice float64       `json:"precio_compra"`
	SalePrice     float64       `json:"precio_venta"`
	Stock         int           `json:"stock"`
	CategoryCode  int           `json:"cod_categoria"`
	LineCode      int           `json:"cod_linea"`
	Status        ProductStatus `json:"estado"`
}
