package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida compartidos por las entidades con borrado lógico.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Producto representa un producto del catálogo. StockActual solo lo muta el
// registrador de movimientos (nunca el CRUD de productos); el borrado es
// lógico vía Estado, nunca físico.
type Producto struct {
	ID             string
	Codigo         string // código único del producto
	Nombre         string
	Descripcion    string
	StockActual    int
	StockMinimo    int
	PrecioUnitario decimal.Decimal
	CategoriaID    *string
	BodegaID       *string
	MarcaID        *string
	ProveedorID    *string
	Estado         string // activo, inactivo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockBajo indica si el stock actual está en o por debajo del mínimo.
func (p *Producto) StockBajo() bool {
	return p.StockActual <= p.StockMinimo
}

// ValorTotal devuelve stock actual × precio unitario.
func (p *Producto) ValorTotal() decimal.Decimal {
	return p.PrecioUnitario.Mul(decimal.NewFromInt(int64(p.StockActual)))
}
