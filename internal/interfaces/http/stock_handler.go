package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/application/report"
	"github.com/jhoicas/magasin-pro/internal/application/usecase"
	"github.com/jhoicas/magasin-pro/internal/domain"
)

// StockHandler maneja consultas de stock, ajustes manuales y el informe
// de alertas (JSON y PDF).
type StockHandler struct {
	uc       *usecase.StockUseCase
	reportUC *report.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, reportUC *report.ReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, reportUC: reportUC}
}

// List godoc
// @Summary      Listar stock del magasin
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
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

// Set godoc
// @Summary      Fijar stock de un producto (ajuste manual)
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStockRequest  true  "produit_id y quantite"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks [put]
func (h *StockHandler) Set(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.ProduitID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "produit_id es requerido"})
	}
	out, err := h.uc.Set(ScopeFrom(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "quantite debe ser >= 0"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Obtener stock de un producto
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        produitId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/{produitId} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	produitID := c.Params("produitId")
	if produitID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "produitId es requerido"})
	}
	out, err := h.uc.Get(ScopeFrom(c), produitID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "stock no encontrado para el producto"})
	}
	return c.JSON(out)
}

// Alertes godoc
// @Summary      Informe de alertas de stock
// @Description  Productos con cantidad en o por debajo de su seuil d'alerte.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertesResponse
// @Router       /api/stocks/alertes [get]
func (h *StockHandler) Alertes(c *fiber.Ctx) error {
	out, err := h.reportUC.Alerts(ScopeFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// AlertesPDF godoc
// @Summary      Informe de alertas de stock en PDF
// @Tags         stocks
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/stocks/alertes/pdf [get]
func (h *StockHandler) AlertesPDF(c *fiber.Ctx) error {
	data, err := h.reportUC.AlertsPDF(c.Context(), ScopeFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rapport_alertes_stock.pdf"`)
	return c.Send(data)
}
