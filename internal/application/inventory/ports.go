package inventory

import (
	"context"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el registrador de
// movimientos: o se confirman las dos escrituras (fila del libro + stock) o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
