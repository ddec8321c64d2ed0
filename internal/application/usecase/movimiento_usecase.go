package usecase

import (
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// MovimientoUseCase consultas de lectura sobre el libro de movimientos.
// El registro (escritura) vive en internal/application/inventory.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// GetByID obtiene un movimiento con producto y username.
func (uc *MovimientoUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	m, err := uc.repo.GetDetalleByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return toMovimientoResponse(m), nil
}

// List lista el libro de movimientos, del más reciente al más antiguo.
func (uc *MovimientoUseCase) List(filtro repository.FiltroMovimientos) (*dto.MovimientoListResponse, error) {
	list, err := uc.repo.ListDetalle(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

func toMovimientoResponse(m *repository.MovimientoDetalle) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:              m.ID,
		ProductoID:      m.ProductoID,
		ProductoCodigo:  m.ProductoCodigo,
		ProductoNombre:  m.ProductoNombre,
		Tipo:            m.Tipo,
		Cantidad:        m.Cantidad,
		PrecioHistorico: m.PrecioHistorico,
		Motivo:          m.Motivo,
		Observaciones:   m.Observaciones,
		NumeroDocumento: m.NumeroDocumento,
		ProveedorID:     m.ProveedorID,
		Username:        m.Username,
		Fecha:           m.Fecha,
	}
}
