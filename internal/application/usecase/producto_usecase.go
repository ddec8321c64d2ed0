package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/pkg/precio"
)

// ProductoUseCase casos de uso CRUD para productos. StockActual no se toca
// aquí después de la creación: se maneja vía movimientos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un nuevo producto. El precio llega como texto legado y se
// normaliza; vacío o malformado queda en cero.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		StockActual:    in.StockActual,
		StockMinimo:    in.StockMinimo,
		PrecioUnitario: precio.Normalizar(in.PrecioUnitario),
		CategoriaID:    in.CategoriaID,
		BodegaID:       in.BodegaID,
		MarcaID:        in.MarcaID,
		ProveedorID:    in.ProveedorID,
		Estado:         entity.EstadoActivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	detalle, err := uc.repo.GetDetalleByID(producto.ID)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(detalle), nil
}

// GetByID obtiene un producto por ID con nombres de relaciones.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	detalle, err := uc.repo.GetDetalleByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, nil
	}
	return toProductoResponse(detalle), nil
}

// Update actualiza los metadatos de un producto. No permite modificar
// StockActual (se maneja vía movimientos).
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.StockMinimo != nil {
		producto.StockMinimo = *in.StockMinimo
	}
	if in.PrecioUnitario != nil {
		producto.PrecioUnitario = precio.Normalizar(*in.PrecioUnitario)
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = in.CategoriaID
	}
	if in.BodegaID != nil {
		producto.BodegaID = in.BodegaID
	}
	if in.MarcaID != nil {
		producto.MarcaID = in.MarcaID
	}
	if in.ProveedorID != nil {
		producto.ProveedorID = in.ProveedorID
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	detalle, err := uc.repo.GetDetalleByID(id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(detalle), nil
}

// List lista productos con nombres de relaciones y campos derivados.
func (uc *ProductoUseCase) List(filtro repository.FiltroProductos) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.ListDetalle(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Delete hace el borrado lógico: estado pasa a inactivo, la fila nunca se
// elimina (los movimientos históricos la referencian).
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, entity.EstadoInactivo)
}

func toProductoResponse(p *repository.ProductoDetalle) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		Nombre:          p.Nombre,
		Descripcion:     p.Descripcion,
		StockActual:     p.StockActual,
		StockMinimo:     p.StockMinimo,
		PrecioUnitario:  p.PrecioUnitario,
		ValorTotal:      p.ValorTotal(),
		StockBajo:       p.StockBajo(),
		CategoriaID:     p.CategoriaID,
		CategoriaNombre: p.CategoriaNombre,
		BodegaID:        p.BodegaID,
		BodegaNombre:    p.BodegaNombre,
		MarcaID:         p.MarcaID,
		MarcaNombre:     p.MarcaNombre,
		ProveedorID:     p.ProveedorID,
		ProveedorNombre: p.ProveedorNombre,
		Estado:          p.Estado,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
