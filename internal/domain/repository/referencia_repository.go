package repository

import (
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
)

// Puertos de persistencia para las entidades de referencia. Todas comparten
// la misma forma de CRUD con borrado lógico (UpdateEstado).

// BodegaRepository puerto de persistencia para bodegas.
type BodegaRepository interface {
	Create(bodega *entity.Bodega) error
	GetByID(id string) (*entity.Bodega, error)
	Update(bodega *entity.Bodega) error
	UpdateEstado(id, estado string) error
	List(estado string, limit, offset int) ([]*entity.Bodega, error)
}

// MarcaRepository puerto de persistencia para marcas.
type MarcaRepository interface {
	Create(marca *entity.Marca) error
	GetByID(id string) (*entity.Marca, error)
	Update(marca *entity.Marca) error
	UpdateEstado(id, estado string) error
	List(estado string, limit, offset int) ([]*entity.Marca, error)
}

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	UpdateEstado(id, estado string) error
	List(estado string, limit, offset int) ([]*entity.Proveedor, error)
}

// CategoriaRepository puerto de persistencia para categorías.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	UpdateEstado(id, estado string) error
	List(estado string, limit, offset int) ([]*entity.Categoria, error)
}
