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

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación de MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

// Create persiste una nueva marca.
func (r *MarcaRepo) Create(m *entity.Marca) error {
	query := `
		INSERT INTO marcas (id, nombre, descripcion, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Descripcion, m.Estado, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert marca: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *MarcaRepo) GetByID(id string) (*entity.Marca, error) {
	query := `
		SELECT id, nombre, descripcion, estado, created_at, updated_at
		FROM marcas WHERE id = $1`
	var m entity.Marca
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Nombre, &m.Descripcion, &m.Estado, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca: %w", err)
	}
	return &m, nil
}

// Update actualiza una marca.
func (r *MarcaRepo) Update(m *entity.Marca) error {
	query := `UPDATE marcas SET nombre = $2, descripcion = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Nombre, m.Descripcion, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update marca: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado de la marca (borrado lógico).
func (r *MarcaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE marcas SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado marca: %w", err)
	}
	return nil
}

// List lista marcas con paginación; estado vacío lista todas.
func (r *MarcaRepo) List(estado string, limit, offset int) ([]*entity.Marca, error) {
	query := `
		SELECT id, nombre, descripcion, estado, created_at, updated_at
		FROM marcas`
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
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Descripcion, &m.Estado, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
