package entity

import "time"

// Entidades de referencia del catálogo: bodegas, marcas, proveedores y
// categorías. Todas comparten la misma forma (nombre + descripción) y el
// mismo borrado lógico vía Estado.

// Bodega representa una bodega o lugar físico donde se almacena inventario.
type Bodega struct {
	ID          string
	Nombre      string
	Descripcion string
	Ubicacion   string
	Estado      string // activo, inactivo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Marca representa la marca de un producto.
type Marca struct {
	ID          string
	Nombre      string
	Descripcion string
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Proveedor representa un proveedor de productos.
type Proveedor struct {
	ID          string
	Nombre      string
	Descripcion string
	Telefono    string
	Email       string
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Categoria representa una categoría de productos.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
