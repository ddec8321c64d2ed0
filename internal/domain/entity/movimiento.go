package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
)

// TipoValido reporta si t es un tipo de movimiento conocido.
func TipoValido(t string) bool {
	return t == TipoEntrada || t == TipoSalida
}

// Movimiento es un registro inmutable del libro de inventario: una entrada o
// salida de stock de un producto. Una vez creado no existe operación de
// actualización ni borrado (append-only).
type Movimiento struct {
	ID              string
	ProductoID      string
	Tipo            string          // entrada, salida
	Cantidad        int             // siempre positivo; el signo lo da el tipo
	PrecioHistorico decimal.Decimal // precio unitario al momento del movimiento
	Motivo          string
	Observaciones   string
	NumeroDocumento string
	ProveedorID     *string
	UsuarioID       *string // nil para movimientos del sistema
	Fecha           time.Time
	CreatedAt       time.Time
}
