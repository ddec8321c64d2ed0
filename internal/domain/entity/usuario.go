package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Username     string // único
	Nombre       string
	Email        string
	PasswordHash string // bcrypt, nunca en plano después de persistir
	Rol          string // admin, operador
	Estado       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
