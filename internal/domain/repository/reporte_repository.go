package repository

import "github.com/shopspring/decimal"

// ResumenInventario agregados del inventario para el reporte básico.
type ResumenInventario struct {
	TotalProductos   int
	ProductosActivos int
	ValorInventario  decimal.Decimal // Σ stock_actual × precio_unitario (activos)
	TotalEntradas    int
	TotalSalidas     int
}

// ProductoStockBajo fila del reporte de productos en o bajo el stock mínimo.
type ProductoStockBajo struct {
	ProductoID     string
	Codigo         string
	Nombre         string
	StockActual    int
	StockMinimo    int
	PrecioUnitario decimal.Decimal
	BodegaNombre   string
}

// ReporteRepository puerto de consultas agregadas para reportes.
type ReporteRepository interface {
	ResumenInventario() (*ResumenInventario, error)
	ProductosStockBajo() ([]*ProductoStockBajo, error)
}
