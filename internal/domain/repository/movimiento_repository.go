package repository

import (
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
)

// MovimientoDetalle es el modelo de lectura de un movimiento con el nombre
// del producto y el username del usuario que lo registró.
type MovimientoDetalle struct {
	entity.Movimiento
	ProductoNombre string
	ProductoCodigo string
	Username       string // vacío si el movimiento es del sistema
}

// FiltroMovimientos filtros opcionales para el listado del libro.
type FiltroMovimientos struct {
	ProductoID string
	Tipo       string
	Limit      int
	Offset     int
}

// MovimientoRepository puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	GetDetalleByID(id string) (*MovimientoDetalle, error)
	ListDetalle(filtro FiltroMovimientos) ([]*MovimientoDetalle, error)
}
