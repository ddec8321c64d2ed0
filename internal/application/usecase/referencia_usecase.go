package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/repository"
)

// Casos de uso CRUD para las entidades de referencia. Las cuatro comparten la
// misma forma: create, get, update, list y borrado lógico.

// BodegaUseCase casos de uso CRUD para bodegas.
type BodegaUseCase struct {
	repo repository.BodegaRepository
}

// NewBodegaUseCase construye el caso de uso.
func NewBodegaUseCase(repo repository.BodegaRepository) *BodegaUseCase {
	return &BodegaUseCase{repo: repo}
}

// Create crea una bodega.
func (uc *BodegaUseCase) Create(in dto.CreateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	now := time.Now()
	b := &entity.Bodega{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Ubicacion:   in.Ubicacion,
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return bodegaResponse(b), nil
}

// GetByID obtiene una bodega por ID.
func (uc *BodegaUseCase) GetByID(id string) (*dto.ReferenciaResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	return bodegaResponse(b), nil
}

// Update actualiza una bodega.
func (uc *BodegaUseCase) Update(id string, in dto.UpdateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	if in.Nombre != nil {
		b.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		b.Descripcion = *in.Descripcion
	}
	if in.Ubicacion != nil {
		b.Ubicacion = *in.Ubicacion
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return bodegaResponse(b), nil
}

// List lista bodegas, opcionalmente filtradas por estado.
func (uc *BodegaUseCase) List(estado string, page dto.PageRequest) (*dto.ReferenciaListResponse, error) {
	list, err := uc.repo.List(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenciaResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *bodegaResponse(b))
	}
	return &dto.ReferenciaListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete borrado lógico de una bodega.
func (uc *BodegaUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, entity.EstadoInactivo)
}

func bodegaResponse(b *entity.Bodega) *dto.ReferenciaResponse {
	return &dto.ReferenciaResponse{
		ID: b.ID, Nombre: b.Nombre, Descripcion: b.Descripcion, Ubicacion: b.Ubicacion,
		Estado: b.Estado, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

// MarcaUseCase casos de uso CRUD para marcas.
type MarcaUseCase struct {
	repo repository.MarcaRepository
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(repo repository.MarcaRepository) *MarcaUseCase {
	return &MarcaUseCase{repo: repo}
}

// Create crea una marca.
func (uc *MarcaUseCase) Create(in dto.CreateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	now := time.Now()
	m := &entity.Marca{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return marcaResponse(m), nil
}

// GetByID obtiene una marca por ID.
func (uc *MarcaUseCase) GetByID(id string) (*dto.ReferenciaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return marcaResponse(m), nil
}

// Update actualiza una marca.
func (uc *MarcaUseCase) Update(id string, in dto.UpdateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return marcaResponse(m), nil
}

// List lista marcas, opcionalmente filtradas por estado.
func (uc *MarcaUseCase) List(estado string, page dto.PageRequest) (*dto.ReferenciaListResponse, error) {
	list, err := uc.repo.List(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenciaResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *marcaResponse(m))
	}
	return &dto.ReferenciaListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete borrado lógico de una marca.
func (uc *MarcaUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, entity.EstadoInactivo)
}

func marcaResponse(m *entity.Marca) *dto.ReferenciaResponse {
	return &dto.ReferenciaResponse{
		ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion,
		Estado: m.Estado, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProveedorUseCase) Create(in dto.CreateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	now := time.Now()
	p := &entity.Proveedor{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Telefono:    in.Telefono,
		Email:       in.Email,
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ReferenciaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// Update actualiza un proveedor.
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// List lista proveedores, opcionalmente filtrados por estado.
func (uc *ProveedorUseCase) List(estado string, page dto.PageRequest) (*dto.ReferenciaListResponse, error) {
	list, err := uc.repo.List(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenciaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *proveedorResponse(p))
	}
	return &dto.ReferenciaListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete borrado lógico de un proveedor.
func (uc *ProveedorUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, entity.EstadoInactivo)
}

func proveedorResponse(p *entity.Proveedor) *dto.ReferenciaResponse {
	return &dto.ReferenciaResponse{
		ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion, Telefono: p.Telefono, Email: p.Email,
		Estado: p.Estado, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(in dto.CreateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	now := time.Now()
	c := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return categoriaResponse(c), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.ReferenciaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return categoriaResponse(c), nil
}

// Update actualiza una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateReferenciaRequest) (*dto.ReferenciaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return categoriaResponse(c), nil
}

// List lista categorías, opcionalmente filtradas por estado.
func (uc *CategoriaUseCase) List(estado string, page dto.PageRequest) (*dto.ReferenciaListResponse, error) {
	list, err := uc.repo.List(estado, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenciaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *categoriaResponse(c))
	}
	return &dto.ReferenciaListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete borrado lógico de una categoría.
func (uc *CategoriaUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstado(id, entity.EstadoInactivo)
}

func categoriaResponse(c *entity.Categoria) *dto.ReferenciaResponse {
	return &dto.ReferenciaResponse{
		ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion,
		Estado: c.Estado, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}
