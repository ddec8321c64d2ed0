package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimientoRequest body para POST /api/movimientos.
type RegistrarMovimientoRequest struct {
	ProductoID      string           `json:"producto_id" validate:"required,uuid4"`
	Tipo            string           `json:"tipo" validate:"required,oneof=entrada salida"`
	Cantidad        int              `json:"cantidad" validate:"required,gt=0"`
	Motivo          string           `json:"motivo" validate:"required"`
	Observaciones   string           `json:"observaciones,omitempty"`
	NumeroDocumento string           `json:"numero_documento,omitempty"`
	ProveedorID     *string          `json:"proveedor_id,omitempty" validate:"omitempty,uuid4"`
	PrecioHistorico *decimal.Decimal `json:"precio_historico,omitempty"`
}

// MovimientoResponse fila del libro de movimientos, con el nombre del
// producto y el username del usuario que lo registró.
type MovimientoResponse struct {
	ID              string          `json:"id"`
	ProductoID      string          `json:"producto_id"`
	ProductoCodigo  string          `json:"producto_codigo"`
	ProductoNombre  string          `json:"producto_nombre"`
	Tipo            string          `json:"tipo"`
	Cantidad        int             `json:"cantidad"`
	PrecioHistorico decimal.Decimal `json:"precio_historico"`
	Motivo          string          `json:"motivo"`
	Observaciones   string          `json:"observaciones,omitempty"`
	NumeroDocumento string          `json:"numero_documento,omitempty"`
	ProveedorID     *string         `json:"proveedor_id,omitempty"`
	Username        string          `json:"username,omitempty"`
	Fecha           time.Time       `json:"fecha"`
}

// MovimientoListResponse lista paginada del libro.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
