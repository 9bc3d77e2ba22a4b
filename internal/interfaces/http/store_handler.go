package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/application/usecase"
	"github.com/jhoicas/magasin-pro/internal/domain"
)

// StoreHandler maneja las peticiones HTTP de magasins. La creación,
// modificación y borrado van detrás de RequireRole("admin") en el router.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear magasin
// @Tags         magasins
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMagasinRequest  true  "Datos del magasin"
// @Success      201   {object}  dto.MagasinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/magasins [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMagasinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nom == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nom es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener magasin por ID
// @Tags         magasins
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del magasin"
// @Success      200  {object}  dto.MagasinResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/magasins/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if !ScopeFrom(c).Allows(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar magasins
// @Description  Un superuser ve todos los magasins; el resto solo el suyo.
// @Tags         magasins
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MagasinListResponse
// @Router       /api/magasins [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	if !IsSuperuser(c) {
		items := []dto.MagasinResponse{}
		if storeID := GetStoreID(c); storeID != "" {
			out, err := h.uc.GetByID(storeID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
			}
			if out != nil {
				items = append(items, *out)
			}
		}
		return c.JSON(dto.MagasinListResponse{
			Items: items,
			Page:  dto.PageResponse{Limit: len(items), Offset: 0},
		})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar magasin
// @Tags         magasins
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del magasin"
// @Param        body  body  dto.UpdateMagasinRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MagasinResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/magasins/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if !ScopeFrom(c).Allows(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
	}
	var in dto.UpdateMagasinRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar magasin
// @Tags         magasins
// @Security     Bearer
// @Param        id  path  string  true  "ID del magasin"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/magasins/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if !ScopeFrom(c).Allows(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "magasin no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
