package postgres

import (
	"context"
	"fmt"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas para el reporte básico de inventario.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// ResumenInventario calcula los agregados de productos y movimientos en una
// sola consulta por tabla.
func (r *ReporteRepo) ResumenInventario() (*repository.ResumenInventario, error) {
	var res repository.ResumenInventario
	err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE estado = 'activo'),
		       COALESCE(SUM(stock_actual * precio_unitario) FILTER (WHERE estado = 'activo'), 0)
		FROM productos`).Scan(&res.TotalProductos, &res.ProductosActivos, &res.ValorInventario)
	if err != nil {
		return nil, fmt.Errorf("resumen productos: %w", err)
	}
	err = r.q.QueryRow(context.Background(), `
		SELECT COUNT(*) FILTER (WHERE tipo = 'entrada'),
		       COUNT(*) FILTER (WHERE tipo = 'salida')
		FROM movimientos`).Scan(&res.TotalEntradas, &res.TotalSalidas)
	if err != nil {
		return nil, fmt.Errorf("resumen movimientos: %w", err)
	}
	return &res, nil
}

// ProductosStockBajo lista los productos activos en o bajo su stock mínimo.
func (r *ReporteRepo) ProductosStockBajo() ([]*repository.ProductoStockBajo, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT p.id, p.codigo, p.nombre, p.stock_actual, p.stock_minimo, p.precio_unitario,
		       COALESCE(b.nombre, '')
		FROM productos p
		LEFT JOIN bodegas b ON b.id = p.bodega_id
		WHERE p.estado = 'activo' AND p.stock_actual <= p.stock_minimo
		ORDER BY p.stock_actual - p.stock_minimo, p.nombre`)
	if err != nil {
		return nil, fmt.Errorf("productos stock bajo: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductoStockBajo
	for rows.Next() {
		var p repository.ProductoStockBajo
		if err := rows.Scan(&p.ProductoID, &p.Codigo, &p.Nombre, &p.StockActual, &p.StockMinimo, &p.PrecioUnitario, &p.BodegaNombre); err != nil {
			return nil, fmt.Errorf("scan stock bajo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
