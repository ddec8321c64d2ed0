package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

var _ repository.BodegaRepository = (*BodegaRepo)(nil)

// BodegaRepo implementación de BodegaRepository sobre PostgreSQL.
type BodegaRepo struct {
	q Querier
}

// NewBodegaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBodegaRepository(q Querier) *BodegaRepo {
	return &BodegaRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *BodegaRepo) Create(b *entity.Bodega) error {
	query := `
		INSERT INTO bodegas (id, nombre, descripcion, ubicacion, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Descripcion, b.Ubicacion, b.Estado, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bodega: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *BodegaRepo) GetByID(id string) (*entity.Bodega, error) {
	query := `
		SELECT id, nombre, descripcion, ubicacion, estado, created_at, updated_at
		FROM bodegas WHERE id = $1`
	var b entity.Bodega
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Nombre, &b.Descripcion, &b.Ubicacion, &b.Estado, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	return &b, nil
}

// Update actualiza una bodega.
func (r *BodegaRepo) Update(b *entity.Bodega) error {
	query := `
		UPDATE bodegas SET nombre = $2, descripcion = $3, ubicacion = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, b.ID, b.Nombre, b.Descripcion, b.Ubicacion, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bodega: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado de la bodega (borrado lógico).
func (r *BodegaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bodegas SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado bodega: %w", err)
	}
	return nil
}

// List lista bodegas con paginación; estado vacío lista todas.
func (r *BodegaRepo) List(estado string, limit, offset int) ([]*entity.Bodega, error) {
	query := `
		SELECT id, nombre, descripcion, ubicacion, estado, created_at, updated_at
		FROM bodegas`
	args := []any{}
	pos := 1
	if estado != "" {
		query += fmt.Sprintf(" WHERE estado = $%d", pos)
		args = append(args, estado)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bodega
	for rows.Next() {
		var b entity.Bodega
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Descripcion, &b.Ubicacion, &b.Estado, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
