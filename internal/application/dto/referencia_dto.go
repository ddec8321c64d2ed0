package dto

import "time"

// DTOs de las entidades de referencia (bodegas, marcas, proveedores,
// categorías). Comparten la misma forma create/update/response.

// CreateReferenciaRequest entrada para crear una entidad de referencia.
type CreateReferenciaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateReferenciaRequest entrada para actualizar una entidad de referencia.
type UpdateReferenciaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion"`
	Ubicacion   *string `json:"ubicacion"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// ReferenciaResponse salida de una entidad de referencia.
type ReferenciaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Ubicacion   string    `json:"ubicacion,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	Email       string    `json:"email,omitempty"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReferenciaListResponse lista paginada de entidades de referencia.
type ReferenciaListResponse struct {
	Items []ReferenciaResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
