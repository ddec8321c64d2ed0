package repository

import (
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
)

// ProductoDetalle es el modelo de lectura de un producto con los nombres de
// sus relaciones y los campos derivados del listado.
type ProductoDetalle struct {
	entity.Producto
	BodegaNombre    string
	MarcaNombre     string
	ProveedorNombre string
	CategoriaNombre string
}

// FiltroProductos filtros opcionales para el listado de productos.
type FiltroProductos struct {
	Estado    string // vacío = todos
	StockBajo bool   // solo productos en o bajo el stock mínimo
	Limit     int
	Offset    int
}

// ProductoRepository puerto de persistencia para productos.
// Stock se maneja exclusivamente vía UpdateStock dentro del registrador de
// movimientos; Create/Update no tocan StockActual salvo el stock inicial.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	GetDetalleByID(id string) (*ProductoDetalle, error)
	Update(producto *entity.Producto) error
	UpdateStock(id string, stock int) error
	UpdateEstado(id, estado string) error
	ListDetalle(filtro FiltroProductos) ([]*ProductoDetalle, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); solo
	// tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Producto, error)
}
