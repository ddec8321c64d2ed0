package repository

import (
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios.
// Se crea en el registro y se lee en el login; no hay update/delete.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
}
