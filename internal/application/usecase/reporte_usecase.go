package usecase

import (
	"context"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// ReportePDFGenerator genera el PDF del reporte de inventario.
type ReportePDFGenerator interface {
	GenerarReporteInventario(ctx context.Context, resumen *dto.ResumenInventarioResponse) ([]byte, error)
}

// ReporteUseCase arma el reporte básico de inventario: agregados + lista de
// productos en o bajo el stock mínimo, en JSON o PDF.
type ReporteUseCase struct {
	repo repository.ReporteRepository
	pdf  ReportePDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository, pdf ReportePDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, pdf: pdf}
}

// ResumenInventario devuelve los agregados del inventario.
func (uc *ReporteUseCase) ResumenInventario() (*dto.ResumenInventarioResponse, error) {
	resumen, err := uc.repo.ResumenInventario()
	if err != nil {
		return nil, err
	}
	bajos, err := uc.repo.ProductosStockBajo()
	if err != nil {
		return nil, err
	}
	out := &dto.ResumenInventarioResponse{
		TotalProductos:   resumen.TotalProductos,
		ProductosActivos: resumen.ProductosActivos,
		ValorInventario:  resumen.ValorInventario,
		TotalEntradas:    resumen.TotalEntradas,
		TotalSalidas:     resumen.TotalSalidas,
		StockBajo:        make([]dto.ProductoStockBajoDTO, 0, len(bajos)),
	}
	for _, b := range bajos {
		out.StockBajo = append(out.StockBajo, dto.ProductoStockBajoDTO{
			ProductoID:     b.ProductoID,
			Codigo:         b.Codigo,
			Nombre:         b.Nombre,
			StockActual:    b.StockActual,
			StockMinimo:    b.StockMinimo,
			PrecioUnitario: b.PrecioUnitario,
			BodegaNombre:   b.BodegaNombre,
		})
	}
	return out, nil
}

// ResumenInventarioPDF genera el mismo reporte como PDF.
func (uc *ReporteUseCase) ResumenInventarioPDF(ctx context.Context) ([]byte, error) {
	resumen, err := uc.ResumenInventario()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarReporteInventario(ctx, resumen)
}
