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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, stock_actual, stock_minimo, precio_unitario,
		categoria_id, bodega_id, marca_id, proveedor_id, estado, created_at, updated_at`

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.StockActual, p.StockMinimo, p.PrecioUnitario,
		p.CategoriaID, p.BodegaID, p.MarcaID, p.ProveedorID, p.Estado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo))
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa movimientos concurrentes sobre el mismo producto; solo tiene
// sentido dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza los metadatos de un producto. No toca stock_actual:
// el stock solo se mueve vía UpdateStock dentro del registrador de movimientos.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, stock_minimo = $4, precio_unitario = $5,
		    categoria_id = $6, bodega_id = $7, marca_id = $8, proveedor_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.StockMinimo, p.PrecioUnitario,
		p.CategoriaID, p.BodegaID, p.MarcaID, p.ProveedorID, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el contador denormalizado de stock (usado por el
// registrador de movimientos, dentro de su transacción).
func (r *ProductoRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado del producto (borrado lógico).
func (r *ProductoRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado producto: %w", err)
	}
	return nil
}

const productoDetalleQuery = `
	SELECT p.id, p.codigo, p.nombre, p.descripcion, p.stock_actual, p.stock_minimo, p.precio_unitario,
	       p.categoria_id, p.bodega_id, p.marca_id, p.proveedor_id, p.estado, p.created_at, p.updated_at,
	       COALESCE(b.nombre, ''), COALESCE(m.nombre, ''), COALESCE(pr.nombre, ''), COALESCE(c.nombre, '')
	FROM productos p
	LEFT JOIN bodegas b ON b.id = p.bodega_id
	LEFT JOIN marcas m ON m.id = p.marca_id
	LEFT JOIN proveedores pr ON pr.id = p.proveedor_id
	LEFT JOIN categorias c ON c.id = p.categoria_id`

// GetDetalleByID obtiene un producto por ID con los nombres de sus relaciones.
func (r *ProductoRepo) GetDetalleByID(id string) (*repository.ProductoDetalle, error) {
	var d repository.ProductoDetalle
	err := r.q.QueryRow(context.Background(), productoDetalleQuery+` WHERE p.id = $1`, id).Scan(
		&d.ID, &d.Codigo, &d.Nombre, &d.Descripcion, &d.StockActual, &d.StockMinimo, &d.PrecioUnitario,
		&d.CategoriaID, &d.BodegaID, &d.MarcaID, &d.ProveedorID, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
		&d.BodegaNombre, &d.MarcaNombre, &d.ProveedorNombre, &d.CategoriaNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto detalle: %w", err)
	}
	return &d, nil
}

// ListDetalle lista productos con nombres de relaciones, filtros y paginación.
func (r *ProductoRepo) ListDetalle(filtro repository.FiltroProductos) ([]*repository.ProductoDetalle, error) {
	query := productoDetalleQuery + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if filtro.Estado != "" {
		query += fmt.Sprintf(" AND p.estado = $%d", pos)
		args = append(args, filtro.Estado)
		pos++
	}
	if filtro.StockBajo {
		query += " AND p.stock_actual <= p.stock_minimo"
	}
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductoDetalle
	for rows.Next() {
		var d repository.ProductoDetalle
		if err := rows.Scan(
			&d.ID, &d.Codigo, &d.Nombre, &d.Descripcion, &d.StockActual, &d.StockMinimo, &d.PrecioUnitario,
			&d.CategoriaID, &d.BodegaID, &d.MarcaID, &d.ProveedorID, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
			&d.BodegaNombre, &d.MarcaNombre, &d.ProveedorNombre, &d.CategoriaNombre,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.StockActual, &p.StockMinimo, &p.PrecioUnitario,
		&p.CategoriaID, &p.BodegaID, &p.MarcaID, &p.ProveedorID, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}
