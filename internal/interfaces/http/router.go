package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/magasin-pro/internal/application/auth"
	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/application/report"
	"github.com/jhoicas/magasin-pro/internal/application/usecase"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	StoreUC    *usecase.StoreUseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	StockUC    *usecase.StockUseCase
	ImportUC   *dataset.ImportUseCase
	ReportUC   *report.ReportUseCase
	JWTSecret  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Magasins (protegido; escritura solo admin)
	magasins := protected.Group("/magasins")
	storeHandler := NewStoreHandler(deps.StoreUC)
	magasins.Get("/", storeHandler.List)
	magasins.Get("/:id", storeHandler.GetByID)
	magasins.Post("/", RequireRole(entity.RoleAdmin), storeHandler.Create)
	magasins.Put("/:id", RequireRole(entity.RoleAdmin), storeHandler.Update)
	magasins.Delete("/:id", RequireRole(entity.RoleAdmin), storeHandler.Delete)

	// Produits (protegido)
	produits := protected.Group("/produits")
	productHandler := NewProductHandler(deps.ProductUC, deps.ImportUC, deps.Logger)
	// La ruta de importación verifica el rol dentro del caso de uso para
	// responder con los mensajes del contrato, no con el 403 del middleware.
	produits.Post("/import-dataset", productHandler.ImportDataset)
	produits.Get("/import-template", productHandler.ImportTemplate)
	produits.Post("/", productHandler.Create)
	produits.Get("/", productHandler.List)
	produits.Get("/:id", productHandler.GetByID)
	produits.Put("/:id", productHandler.Update)
	produits.Delete("/:id", productHandler.Delete)

	// Fournisseurs (protegido)
	fournisseurs := protected.Group("/fournisseurs")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	fournisseurs.Post("/", supplierHandler.Create)
	fournisseurs.Get("/", supplierHandler.List)
	fournisseurs.Get("/:id", supplierHandler.GetByID)
	fournisseurs.Put("/:id", supplierHandler.Update)
	fournisseurs.Delete("/:id", supplierHandler.Delete)

	// Stocks (protegido). Las rutas estáticas de alertas van antes que la
	// ruta con parámetro para que Fiber no las capture como produitId.
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	stocks.Get("/alertes/pdf", stockHandler.AlertesPDF)
	stocks.Get("/alertes", stockHandler.Alertes)
	stocks.Get("/", stockHandler.List)
	stocks.Put("/", stockHandler.Set)
	stocks.Get("/:produitId", stockHandler.GetByProduct)
}
