package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/application/usecase"
	"github.com/jhoicas/magasin-pro/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP de fournisseurs (protegido).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFournisseurRequest  true  "Datos del fournisseur"
// @Success      201   {object}  dto.FournisseurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fournisseurs [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nom == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nom es requerido"})
	}
	out, err := h.uc.Create(ScopeFrom(c), in)
	if err != nil {
		switch err {
		case domain.ErrNoStore:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "usuario sin magasin asignado"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un fournisseur con ese nombre en el magasin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener fournisseur por ID
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del fournisseur"
// @Success      200  {object}  dto.FournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.GetByID(ScopeFrom(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "fournisseur no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fournisseurs del magasin
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.FournisseurListResponse
// @Router       /api/fournisseurs [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(ScopeFrom(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del fournisseur"
// @Param        body  body  dto.UpdateFournisseurRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	var in dto.UpdateFournisseurRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ScopeFrom(c), id, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un fournisseur con ese nombre en el magasin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "fournisseur no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Param        id  path  string  true  "ID del fournisseur"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fournisseurs/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Delete(ScopeFrom(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "fournisseur no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
