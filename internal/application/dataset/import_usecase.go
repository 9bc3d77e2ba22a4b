package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
	"github.com/jhoicas/magasin-pro/pkg/logger"
)

// RequiredColumns son las columnas que todo dataset de importación debe
// traer, en el orden en que se reportan cuando faltan.
var RequiredColumns = []string{"nom", "reference", "categorie", "prix", "seuil_alerte", "fournisseur", "stock"}

// Placeholders para fournisseurs creados durante una importación, cuando
// el dataset solo trae el nombre.
const (
	SupplierAddressPlaceholder = "Adresse à compléter"
	SupplierContactPlaceholder = "Contact à compléter"
)

// Caller identifica a quien dispara la importación.
type Caller struct {
	UserID    string
	StoreID   string // vacío si el usuario no tiene magasin asignado
	Role      string
	Superuser bool
}

// ImportUseCase orquesta la importación de un dataset: control de acceso,
// parseo del archivo, validación de columnas y reconciliación fila a fila.
// Cada fila corre en su propia transacción, de modo que una fila fallida
// no deja efectos parciales ni detiene a las demás.
type ImportUseCase struct {
	parser    Parser
	templates TemplateWriter
	txRunner  TxRunner
	log       *logger.Logger
}

func NewImportUseCase(parser Parser, templates TemplateWriter, txRunner TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{parser: parser, templates: templates, txRunner: txRunner, log: log}
}

// Authorize valida el acceso del caller sin tocar el archivo: solo
// managers y admins importan, y siempre sobre su propio magasin.
func (uc *ImportUseCase) Authorize(caller Caller) error {
	if caller.Role != entity.RoleManager && caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if caller.StoreID == "" {
		return domain.ErrNoStore
	}
	return nil
}

// Import procesa el archivo y devuelve las estadísticas acumuladas.
// Errores de acceso, formato o esquema abortan todo; errores de fila
// quedan registrados en stats.Errors y la importación continúa.
func (uc *ImportUseCase) Import(ctx context.Context, caller Caller, filename string, data []byte) (*dto.ImportStats, error) {
	if err := uc.Authorize(caller); err != nil {
		return nil, err
	}

	table, err := uc.parser.Parse(data, filename)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, &ParseError{Err: err}
	}

	if missing := table.MissingColumns(RequiredColumns); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	stats := dto.NewImportStats()
	for i, row := range table.Rows {
		line := i + 2 // la fila 1 del archivo es la cabecera
		if err := uc.importRow(ctx, caller.StoreID, row, stats); err != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("Ligne %d: %v", line, err))
			uc.log.Error().Err(err).Int("ligne", line).Str("magasin_id", caller.StoreID).Msg("error importando fila del dataset")
		}
	}

	uc.log.Info().
		Str("magasin_id", caller.StoreID).
		Str("user_id", caller.UserID).
		Int("produits_created", stats.ProduitsCreated).
		Int("produits_updated", stats.ProduitsUpdated).
		Int("fournisseurs_created", stats.FournisseursCreated).
		Int("stocks_created", stats.StocksCreated).
		Int("stocks_updated", stats.StocksUpdated).
		Int("errores", len(stats.Errors)).
		Msg("importación de dataset terminada")

	return stats, nil
}

// rowValues son los valores ya normalizados de una fila del dataset.
type rowValues struct {
	Nom         string
	Reference   string
	Categorie   string
	Prix        decimal.Decimal
	Seuil       int
	Fournisseur string // vacío si la fila no trae fournisseur utilizable
	Stock       int
	HasStock    bool
}

// rowValuesFrom extrae y normaliza los valores de la fila. Solo las
// columnas de texto obligatorias producen error; precio y seuil ilegibles
// valen 0 y un stock ilegible o no positivo se ignora.
func rowValuesFrom(row Row) (*rowValues, error) {
	vals := &rowValues{}

	var ok bool
	if vals.Nom, ok = trimmedCell(row, "nom"); !ok {
		return nil, errors.New("columna 'nom' sin valor")
	}
	if vals.Reference, ok = trimmedCell(row, "reference"); !ok {
		return nil, errors.New("columna 'reference' sin valor")
	}
	if vals.Categorie, ok = trimmedCell(row, "categorie"); !ok {
		return nil, errors.New("columna 'categorie' sin valor")
	}

	vals.Prix = parsePrice(row, "prix")
	vals.Seuil = parseThreshold(row, "seuil_alerte")
	vals.Fournisseur, _ = trimmedCell(row, "fournisseur")
	vals.Stock, vals.HasStock = parseStock(row, "stock")

	return vals, nil
}

// importRow reconcilia una fila dentro de una transacción propia. Los
// contadores se aplican a stats solo si la transacción hace commit.
func (uc *ImportUseCase) importRow(ctx context.Context, storeID string, row Row, stats *dto.ImportStats) error {
	vals, err := rowValuesFrom(row)
	if err != nil {
		return err
	}

	var delta dto.ImportStats
	err = uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		supplierID, err := uc.doSupplier(supplierRepo, storeID, vals, &delta)
		if err != nil {
			return err
		}
		product, err := uc.doProduct(productRepo, storeID, vals, supplierID, &delta)
		if err != nil {
			return err
		}
		return uc.doStock(stockRepo, product, storeID, vals, &delta)
	})
	if err != nil {
		return err
	}

	stats.Merge(delta)
	return nil
}

// doSupplier resuelve el fournisseur de la fila, creándolo con datos
// placeholder si no existe aún en el magasin.
func (uc *ImportUseCase) doSupplier(repo repository.SupplierRepository, storeID string, vals *rowValues, delta *dto.ImportStats) (*string, error) {
	if vals.Fournisseur == "" {
		return nil, nil
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      vals.Fournisseur,
		Address:   SupplierAddressPlaceholder,
		Contact:   SupplierContactPlaceholder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := repo.GetOrCreate(supplier)
	if err != nil {
		return nil, fmt.Errorf("error resolviendo fournisseur: %w", err)
	}
	if created {
		delta.FournisseursCreated++
	}
	return &supplier.ID, nil
}

// doProduct hace upsert del producto por (magasin, reference). La
// referencia nunca cambia en una actualización; el resto de campos sí,
// incluido el vínculo al fournisseur (que se limpia si la fila no trae).
func (uc *ImportUseCase) doProduct(repo repository.ProductRepository, storeID string, vals *rowValues, supplierID *string, delta *dto.ImportStats) (*entity.Product, error) {
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		Name:           vals.Nom,
		Reference:      vals.Reference,
		Category:       vals.Categorie,
		UnitPrice:      vals.Prix,
		AlertThreshold: vals.Seuil,
		SupplierID:     supplierID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := repo.Upsert(product)
	if err != nil {
		return nil, fmt.Errorf("error guardando producto: %w", err)
	}
	if created {
		delta.ProduitsCreated++
	} else {
		delta.ProduitsUpdated++
	}
	return product, nil
}

// doStock acumula la cantidad de la fila sobre el stock del producto en
// el magasin. Las filas sin cantidad utilizable no tocan el stock.
func (uc *ImportUseCase) doStock(repo repository.StockRepository, product *entity.Product, storeID string, vals *rowValues, delta *dto.ImportStats) error {
	if !vals.HasStock {
		return nil
	}

	created, err := repo.Accumulate(product.ID, storeID, vals.Stock)
	if err != nil {
		return fmt.Errorf("error acumulando stock: %w", err)
	}
	if created {
		delta.StocksCreated++
	} else {
		delta.StocksUpdated++
	}
	return nil
}
