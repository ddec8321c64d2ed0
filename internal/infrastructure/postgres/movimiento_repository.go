package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: solo Create y lecturas.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, precio_historico, motivo,
			observaciones, numero_documento, proveedor_id, usuario_id, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.PrecioHistorico, m.Motivo,
		m.Observaciones, m.NumeroDocumento, m.ProveedorID, m.UsuarioID, m.Fecha, m.CreatedAt,
	)
	if err != nil {
		// proveedor_id o usuario_id apuntando a una fila inexistente
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

const movimientoDetalleQuery = `
	SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.precio_historico, m.motivo,
	       m.observaciones, m.numero_documento, m.proveedor_id, m.usuario_id, m.fecha, m.created_at,
	       p.nombre, p.codigo, COALESCE(u.username, '')
	FROM movimientos m
	JOIN productos p ON p.id = m.producto_id
	LEFT JOIN usuarios u ON u.id = m.usuario_id`

// GetDetalleByID obtiene un movimiento con nombre de producto y username.
func (r *MovimientoRepo) GetDetalleByID(id string) (*repository.MovimientoDetalle, error) {
	var d repository.MovimientoDetalle
	err := r.q.QueryRow(context.Background(), movimientoDetalleQuery+` WHERE m.id = $1`, id).Scan(
		&d.ID, &d.ProductoID, &d.Tipo, &d.Cantidad, &d.PrecioHistorico, &d.Motivo,
		&d.Observaciones, &d.NumeroDocumento, &d.ProveedorID, &d.UsuarioID, &d.Fecha, &d.CreatedAt,
		&d.ProductoNombre, &d.ProductoCodigo, &d.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &d, nil
}

// ListDetalle lista movimientos del más reciente al más antiguo, con filtros
// opcionales por producto y tipo.
func (r *MovimientoRepo) ListDetalle(filtro repository.FiltroMovimientos) ([]*repository.MovimientoDetalle, error) {
	query := movimientoDetalleQuery + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if filtro.ProductoID != "" {
		query += fmt.Sprintf(" AND m.producto_id = $%d", pos)
		args = append(args, filtro.ProductoID)
		pos++
	}
	if filtro.Tipo != "" {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, filtro.Tipo)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.fecha DESC, m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovimientoDetalle
	for rows.Next() {
		var d repository.MovimientoDetalle
		if err := rows.Scan(
			&d.ID, &d.ProductoID, &d.Tipo, &d.Cantidad, &d.PrecioHistorico, &d.Motivo,
			&d.Observaciones, &d.NumeroDocumento, &d.ProveedorID, &d.UsuarioID, &d.Fecha, &d.CreatedAt,
			&d.ProductoNombre, &d.ProductoCodigo, &d.Username,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
