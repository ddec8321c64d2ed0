package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra movimientos de inventario de forma
// transaccional: bloquea la fila del producto (SELECT FOR UPDATE), inserta la
// fila del libro y actualiza el stock denormalizado, con Commit/Rollback.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner}
}

// MovimientoInput entrada para registrar un movimiento.
// PrecioHistorico es opcional: si viene, se guarda tal cual; si no, se guarda
// el precio unitario actual del producto al momento del movimiento.
// UsuarioID es opcional: nil para movimientos originados por el sistema.
type MovimientoInput struct {
	ProductoID      string
	Tipo            string
	Cantidad        int
	Motivo          string
	Observaciones   string
	NumeroDocumento string
	ProveedorID     *string
	PrecioHistorico *decimal.Decimal
	UsuarioID       *string
}

// Registrar valida la entrada, inicia una transacción y ejecuta las dos
// escrituras del movimiento como unidad atómica. Devuelve el ID del
// movimiento creado.
//
// Una salida que dejaría el stock en negativo se rechaza con
// domain.ErrInsufficientStock: el frontend legado hacía esta validación solo
// del lado del cliente, aquí se aplica en el servidor.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, input MovimientoInput) (string, error) {
	if !entity.TipoValido(input.Tipo) {
		return "", domain.ErrInvalidInput
	}
	if input.Cantidad <= 0 {
		return "", domain.ErrInvalidInput
	}
	if strings.TrimSpace(input.Motivo) == "" {
		return "", domain.ErrInvalidInput
	}
	if input.PrecioHistorico != nil && input.PrecioHistorico.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	movID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		// Existencia y bloqueo de fila en la misma transacción: dos
		// movimientos concurrentes sobre el mismo producto se serializan aquí.
		producto, err := productoRepo.GetForUpdate(input.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrProductNotFound
		}
		if producto.Estado != entity.EstadoActivo {
			return domain.ErrInactiveResource
		}

		precio := producto.PrecioUnitario
		if input.PrecioHistorico != nil {
			precio = *input.PrecioHistorico
		}

		nuevoStock := producto.StockActual
		switch input.Tipo {
		case entity.TipoEntrada:
			nuevoStock += input.Cantidad
		case entity.TipoSalida:
			nuevoStock -= input.Cantidad
			if nuevoStock < 0 {
				return domain.ErrInsufficientStock
			}
		}

		mov := &entity.Movimiento{
			ID:              movID,
			ProductoID:      input.ProductoID,
			Tipo:            input.Tipo,
			Cantidad:        input.Cantidad,
			PrecioHistorico: precio,
			Motivo:          strings.TrimSpace(input.Motivo),
			Observaciones:   input.Observaciones,
			NumeroDocumento: input.NumeroDocumento,
			ProveedorID:     input.ProveedorID,
			UsuarioID:       input.UsuarioID,
			Fecha:           now,
			CreatedAt:       now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productoRepo.UpdateStock(input.ProductoID, nuevoStock)
	})
	if err != nil {
		return "", err
	}
	return movID, nil
}
