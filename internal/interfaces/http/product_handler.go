package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/application/usecase"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP de productos, incluida la
// importación de datasets y la descarga de la plantilla.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	importUC *dataset.ImportUseCase
	log      *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, importUC *dataset.ImportUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, importUC: importUC, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProduitRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produits [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nom == "" || in.Reference == "" || in.Categorie == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nom, reference y categorie son requeridos"})
	}
	if in.SeuilAlerte < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "seuil_alerte debe ser >= 0"})
	}
	out, err := h.uc.Create(ScopeFrom(c), in)
	if err != nil {
		switch err {
		case domain.ErrNoStore:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "usuario sin magasin asignado"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "la référence ya existe en este magasin"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "el fournisseur indicado no existe"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el fournisseur pertenece a otro magasin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.GetByID(ScopeFrom(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos del magasin
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        categorie    query  string  false  "Filtro por categoría exacta"
// @Param        fournisseur  query  string  false  "Filtro por ID de fournisseur"
// @Param        search       query  string  false  "Busca en nom, référence y catégorie"
// @Param        ordering     query  string  false  "nom|-nom|prix_unitaire|-prix_unitaire|created_at (defecto -created_at)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProduitListResponse
// @Router       /api/produits [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProduitFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros de consulta inválidos"})
	}
	in.DefaultPage()
	if in.Limit > 100 {
		in.Limit = 100
	}
	out, err := h.uc.List(ScopeFrom(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProduitRequest  true  "Campos a actualizar (référence inmutable)"
// @Success      200   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	var in dto.UpdateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ScopeFrom(c), id, in)
	if err != nil {
		h.log.Error().Err(err).Str("produit_id", id).Msg("error modificando producto")
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "el fournisseur pertenece a otro magasin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	}
	h.log.Info().Str("produit_id", out.ID).Str("nom", out.Nom).Msg("producto modificado")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         produits
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Delete(ScopeFrom(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportDataset godoc
// @Summary      Importar dataset CSV/Excel de productos
// @Description  Crea o actualiza fournisseurs, produits y stocks fila a fila.
// @Tags         produits
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Archivo .csv, .xlsx o .xls"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/produits/import-dataset [post]
func (h *ProductHandler) ImportDataset(c *fiber.Ctx) error {
	caller := CallerFrom(c)

	// El orden de las guardas es contractual: rol, magasin y luego archivo.
	if err := h.importUC.Authorize(caller); err != nil {
		return h.importError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Aucun fichier fourni."})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Erreur lors de la lecture du fichier: " + err.Error()})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Erreur lors de la lecture du fichier: " + err.Error()})
	}

	stats, err := h.importUC.Import(c.Context(), caller, fileHeader.Filename, data)
	if err != nil {
		return h.importError(c, err)
	}
	return c.JSON(dto.ImportResponse{Message: "Import terminé", Stats: *stats})
}

// importError traduce los errores de la importación al contrato HTTP.
func (h *ProductHandler) importError(c *fiber.Ctx, err error) error {
	var serr *dataset.SchemaError
	var perr *dataset.ParseError
	switch {
	case err == domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Seuls les managers et admins peuvent importer des datasets."})
	case err == domain.ErrNoStore:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Utilisateur non assigné à un magasin."})
	case err == domain.ErrUnsupportedFormat:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Format de fichier non supporté. Utilisez CSV ou Excel."})
	case errors.As(err, &serr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Colonnes manquantes: " + strings.Join(serr.Missing, ", ")})
	case errors.As(err, &perr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Erreur lors de la lecture du fichier: " + perr.Unwrap().Error()})
	default:
		h.log.Error().Err(err).Msg("error importando dataset")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

// ImportTemplate godoc
// @Summary      Descargar plantilla de importación
// @Tags         produits
// @Security     Bearer
// @Param        format  query  string  false  "csv o xlsx"  default(csv)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/produits/import-template [get]
func (h *ProductHandler) ImportTemplate(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	data, err := h.importUC.Template(format)
	if err != nil {
		if err == domain.ErrUnsupportedFormat {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "formato inválido: usa csv o xlsx"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if format == "xlsx" {
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="modele_import_produits.xlsx"`)
	} else {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="modele_import_produits.csv"`)
	}
	return c.Send(data)
}
