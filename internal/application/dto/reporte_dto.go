package dto

import "github.com/shopspring/decimal"

// ResumenInventarioResponse agregados para GET /api/reportes/inventario.
type ResumenInventarioResponse struct {
	TotalProductos   int                    `json:"total_productos"`
	ProductosActivos int                    `json:"productos_activos"`
	ValorInventario  decimal.Decimal        `json:"valor_inventario"`
	TotalEntradas    int                    `json:"total_entradas"`
	TotalSalidas     int                    `json:"total_salidas"`
	StockBajo        []ProductoStockBajoDTO `json:"stock_bajo"`
}

// ProductoStockBajoDTO producto en o por debajo de su stock mínimo.
type ProductoStockBajoDTO struct {
	ProductoID     string          `json:"producto_id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	StockActual    int             `json:"stock_actual"`
	StockMinimo    int             `json:"stock_minimo"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	BodegaNombre   string          `json:"bodega_nombre,omitempty"`
}
