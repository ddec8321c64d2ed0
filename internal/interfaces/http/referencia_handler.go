package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/application/dto"
	"github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/internal/domain"
)

// ReferenciaUseCase es el contrato común de los casos de uso CRUD de las
// entidades de referencia (bodegas, marcas, proveedores, categorías).
// Un solo handler sirve los cuatro recursos.
type ReferenciaUseCase interface {
	Create(in dto.CreateReferenciaRequest) (*dto.ReferenciaResponse, error)
	GetByID(id string) (*dto.ReferenciaResponse, error)
	Update(id string, in dto.UpdateReferenciaRequest) (*dto.ReferenciaResponse, error)
	List(estado string, page dto.PageRequest) (*dto.ReferenciaListResponse, error)
	Delete(id string) error
}

// ReferenciaHandler maneja las peticiones HTTP de una entidad de referencia
// (protegido). recurso se usa solo en los mensajes de error.
type ReferenciaHandler struct {
	uc      ReferenciaUseCase
	recurso string
}

// NewReferenciaHandler construye el handler para un recurso concreto.
func NewReferenciaHandler(uc ReferenciaUseCase, recurso string) *ReferenciaHandler {
	return &ReferenciaHandler{uc: uc, recurso: recurso}
}

// Create crea la entidad de referencia.
func (h *ReferenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: h.recurso + " duplicado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene la entidad por ID.
func (h *ReferenciaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.recurso + " no encontrado"})
	}
	return c.JSON(out)
}

// List lista las entidades con paginación y filtro opcional por estado.
func (h *ReferenciaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("estado"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update actualiza la entidad.
func (h *ReferenciaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.recurso + " no encontrado"})
	}
	return c.JSON(out)
}

// Delete borrado lógico de la entidad.
func (h *ReferenciaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.recurso + " no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": h.recurso + " desactivado"})
}
