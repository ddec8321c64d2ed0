package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
// PrecioUnitario llega como texto y se normaliza con pkg/precio: acepta
// "1.234.567,89", "1,234,567.89" y "1.234.567"; vacío o malformado queda en 0.
type CreateProductoRequest struct {
	Codigo         string  `json:"codigo" validate:"required,min=1,max=100"`
	Nombre         string  `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string  `json:"descripcion"`
	StockActual    int     `json:"stock_actual" validate:"omitempty,min=0"`
	StockMinimo    int     `json:"stock_minimo" validate:"omitempty,min=0"`
	PrecioUnitario string  `json:"precio_unitario"`
	CategoriaID    *string `json:"categoria_id,omitempty" validate:"omitempty,uuid4"`
	BodegaID       *string `json:"bodega_id,omitempty" validate:"omitempty,uuid4"`
	MarcaID        *string `json:"marca_id,omitempty" validate:"omitempty,uuid4"`
	ProveedorID    *string `json:"proveedor_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateProductoRequest entrada para actualizar un producto.
// StockActual no es actualizable: el stock solo se mueve vía movimientos.
type UpdateProductoRequest struct {
	Nombre         *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion    *string `json:"descripcion"`
	StockMinimo    *int    `json:"stock_minimo" validate:"omitempty,min=0"`
	PrecioUnitario *string `json:"precio_unitario"`
	CategoriaID    *string `json:"categoria_id" validate:"omitempty,uuid4"`
	BodegaID       *string `json:"bodega_id" validate:"omitempty,uuid4"`
	MarcaID        *string `json:"marca_id" validate:"omitempty,uuid4"`
	ProveedorID    *string `json:"proveedor_id" validate:"omitempty,uuid4"`
}

// ProductoResponse salida de un producto con nombres de relaciones y campos
// derivados (valor total y bandera de stock bajo).
type ProductoResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion,omitempty"`
	StockActual     int             `json:"stock_actual"`
	StockMinimo     int             `json:"stock_minimo"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	StockBajo       bool            `json:"stock_bajo"`
	CategoriaID     *string         `json:"categoria_id,omitempty"`
	CategoriaNombre string          `json:"categoria_nombre,omitempty"`
	BodegaID        *string         `json:"bodega_id,omitempty"`
	BodegaNombre    string          `json:"bodega_nombre,omitempty"`
	MarcaID         *string         `json:"marca_id,omitempty"`
	MarcaNombre     string          `json:"marca_nombre,omitempty"`
	ProveedorID     *string         `json:"proveedor_id,omitempty"`
	ProveedorNombre string          `json:"proveedor_nombre,omitempty"`
	Estado          string          `json:"estado"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
