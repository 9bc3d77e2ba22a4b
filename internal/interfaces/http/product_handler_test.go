package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/application/report"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
	"github.com/jhoicas/magasin-pro/internal/infrastructure/tabular"
	apphttp "github.com/jhoicas/magasin-pro/internal/interfaces/http"
	"github.com/jhoicas/magasin-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia para la importación (sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type httpFakeStore struct {
	suppliers map[string]*entity.Supplier // storeID|nom
	products  map[string]*entity.Product  // storeID|reference
	stocks    map[string]*entity.Stock    // productID|storeID
	seq       int
}

func newHTTPFakeStore() *httpFakeStore {
	return &httpFakeStore{
		suppliers: map[string]*entity.Supplier{},
		products:  map[string]*entity.Product{},
		stocks:    map[string]*entity.Stock{},
	}
}

func (s *httpFakeStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%03d", prefix, s.seq)
}

type httpFakeSupplierRepo struct{ store *httpFakeStore }

func (r *httpFakeSupplierRepo) GetOrCreate(supplier *entity.Supplier) (bool, error) {
	key := supplier.StoreID + "|" + supplier.Name
	if existing, ok := r.store.suppliers[key]; ok {
		*supplier = *existing
		return false, nil
	}
	supplier.ID = r.store.nextID("F")
	clone := *supplier
	r.store.suppliers[key] = &clone
	return true, nil
}

func (r *httpFakeSupplierRepo) Create(*entity.Supplier) error { panic("no usado en la importación") }
func (r *httpFakeSupplierRepo) GetByID(string) (*entity.Supplier, error) {
	panic("no usado en la importación")
}
func (r *httpFakeSupplierRepo) GetByStoreAndName(string, string) (*entity.Supplier, error) {
	panic("no usado en la importación")
}
func (r *httpFakeSupplierRepo) Update(*entity.Supplier) error { panic("no usado en la importación") }
func (r *httpFakeSupplierRepo) List(domain.Scope, int, int) ([]*entity.Supplier, error) {
	panic("no usado en la importación")
}
func (r *httpFakeSupplierRepo) Delete(string) error { panic("no usado en la importación") }

type httpFakeProductRepo struct{ store *httpFakeStore }

func (r *httpFakeProductRepo) Upsert(product *entity.Product) (bool, error) {
	key := product.StoreID + "|" + product.Reference
	if existing, ok := r.store.products[key]; ok {
		existing.Name = product.Name
		existing.Category = product.Category
		existing.UnitPrice = product.UnitPrice
		existing.AlertThreshold = product.AlertThreshold
		existing.SupplierID = product.SupplierID
		*product = *existing
		return false, nil
	}
	product.ID = r.store.nextID("P")
	clone := *product
	r.store.products[key] = &clone
	return true, nil
}

func (r *httpFakeProductRepo) Create(*entity.Product) error { panic("no usado en la importación") }
func (r *httpFakeProductRepo) GetByID(string) (*entity.Product, error) {
	panic("no usado en la importación")
}
func (r *httpFakeProductRepo) GetByStoreAndReference(string, string) (*entity.Product, error) {
	panic("no usado en la importación")
}
func (r *httpFakeProductRepo) Update(*entity.Product) error { panic("no usado en la importación") }
func (r *httpFakeProductRepo) List(domain.Scope, repository.ProductFilter) ([]*entity.Product, error) {
	panic("no usado en la importación")
}
func (r *httpFakeProductRepo) Count(domain.Scope, repository.ProductFilter) (int, error) {
	panic("no usado en la importación")
}
func (r *httpFakeProductRepo) Delete(string) error { panic("no usado en la importación") }

type httpFakeStockRepo struct{ store *httpFakeStore }

func (r *httpFakeStockRepo) Accumulate(productID, storeID string, delta int) (bool, error) {
	key := productID + "|" + storeID
	if existing, ok := r.store.stocks[key]; ok {
		existing.Quantity += delta
		return false, nil
	}
	r.store.stocks[key] = &entity.Stock{ProductID: productID, StoreID: storeID, Quantity: delta}
	return true, nil
}

func (r *httpFakeStockRepo) Get(string, string) (*entity.Stock, error) {
	panic("no usado en la importación")
}
func (r *httpFakeStockRepo) Set(*entity.Stock) error { panic("no usado en la importación") }
func (r *httpFakeStockRepo) List(domain.Scope, int, int) ([]repository.StockRow, error) {
	panic("no usado en la importación")
}
func (r *httpFakeStockRepo) ListLowStock(domain.Scope) ([]repository.LowStockRow, error) {
	return []repository.LowStockRow{}, nil
}

// httpFakeTxRunner ejecuta fn directamente; el rollback por fila se prueba
// en el paquete dataset.
type httpFakeTxRunner struct{ store *httpFakeStore }

func (tx *httpFakeTxRunner) Run(_ context.Context, fn func(repository.SupplierRepository, repository.ProductRepository, repository.StockRepository) error) error {
	return fn(
		&httpFakeSupplierRepo{store: tx.store},
		&httpFakeProductRepo{store: tx.store},
		&httpFakeStockRepo{store: tx.store},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const importCSVHeader = "nom,reference,categorie,prix,seuil_alerte,fournisseur,stock"

// buildAPIApp levanta la app con el router real y fakes de persistencia.
func buildAPIApp(t *testing.T) (*fiber.App, *httpFakeStore) {
	t.Helper()
	store := newHTTPFakeStore()
	importUC := dataset.NewImportUseCase(
		tabular.Parser{},
		tabular.TemplateWriter{},
		&httpFakeTxRunner{store: store},
		logger.Nop(),
	)
	reportUC := report.NewReportUseCase(&httpFakeStockRepo{store: store}, nil, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ImportUC:  importUC,
		ReportUC:  reportUC,
		JWTSecret: testJWTSecret,
		Logger:    logger.Nop(),
	})
	return app, store
}

// multipartBody arma un cuerpo multipart con un único campo file.
func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// doImport lanza POST /api/produits/import-dataset con el archivo dado.
// Si filename está vacío no adjunta archivo alguno.
func doImport(t *testing.T, app *fiber.App, token, filename string, content []byte) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	var contentType string
	if filename != "" {
		body, contentType = multipartBody(t, filename, content)
	} else {
		body = &bytes.Buffer{}
		w := multipart.NewWriter(body)
		require.NoError(t, w.Close())
		contentType = w.FormDataContentType()
	}
	req := httptest.NewRequest(http.MethodPost, "/api/produits/import-dataset", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeErrorBody decodifica una respuesta {"error": "..."}.
func decodeErrorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del endpoint de importación — contrato de mensajes
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: un vendeur no puede importar, mensaje exacto del contrato.
func TestImportDataset_VendeurRecibe403(t *testing.T) {
	app, _ := buildAPIApp(t)
	csv := importCSVHeader + "\nMarteau,REF-001,Outillage,9.99,5,Fournisseur Général,10\n"

	resp := doImport(t, app, tokenFor(t, "vendeur", testStoreID, false), "produits.csv", []byte(csv))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Seuls les managers et admins peuvent importer des datasets.", decodeErrorBody(t, resp))
}

// Caso 2: la guarda de rol se evalúa antes que la presencia del archivo.
func TestImportDataset_RolAntesQueArchivo(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, tokenFor(t, "vendeur", testStoreID, false), "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Seuls les managers et admins peuvent importer des datasets.", decodeErrorBody(t, resp))
}

// Caso 3: manager sin magasin asignado.
func TestImportDataset_SinMagasin(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, tokenFor(t, "manager", "", false), "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Utilisateur non assigné à un magasin.", decodeErrorBody(t, resp))
}

// Caso 4: manager con magasin pero sin archivo en el form.
func TestImportDataset_SinArchivo(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Aucun fichier fourni.", decodeErrorBody(t, resp))
}

// Caso 5: extensión no soportada.
func TestImportDataset_FormatoNoSoportado(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "datos.txt", []byte("lo que sea"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Format de fichier non supporté. Utilisez CSV ou Excel.", decodeErrorBody(t, resp))
}

// Caso 6: faltan columnas obligatorias, listadas en orden canónico.
func TestImportDataset_ColumnasFaltantes(t *testing.T) {
	app, _ := buildAPIApp(t)
	csv := "nom,reference\nMarteau,REF-001\n"

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "produits.csv", []byte(csv))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Colonnes manquantes: categorie, prix, seuil_alerte, fournisseur, stock",
		decodeErrorBody(t, resp))
}

// Caso 7: archivo Excel corrupto.
func TestImportDataset_ArchivoCorrupto(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "datos.xlsx", []byte{0x00, 0x01, 0x02})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, strings.HasPrefix(decodeErrorBody(t, resp), "Erreur lors de la lecture du fichier: "),
		"el mensaje debe llevar el prefijo de error de lectura")
}

// Caso 8: importación correcta de dos filas con el mismo fournisseur.
func TestImportDataset_ImportacionCorrecta(t *testing.T) {
	app, store := buildAPIApp(t)
	csv := importCSVHeader + "\n" +
		"Marteau,REF-001,Outillage,9.99,5,Fournisseur Général,10\n" +
		"Tournevis,REF-002,Outillage,4.50,3,Fournisseur Général,7\n"

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "produits.csv", []byte(csv))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Se decodifica a mapa para fijar los nombres de clave del contrato.
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Import terminé", body["message"])

	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok, "la respuesta debe incluir el objeto stats")
	assert.Equal(t, float64(2), stats["produits_created"])
	assert.Equal(t, float64(0), stats["produits_updated"])
	assert.Equal(t, float64(1), stats["fournisseurs_created"])
	assert.Equal(t, float64(2), stats["stocks_created"])
	assert.Equal(t, float64(0), stats["stocks_updated"])
	assert.Equal(t, []interface{}{}, stats["errors"], "errors debe serializar como lista vacía")

	// Verificación del estado persistido por los fakes.
	require.Len(t, store.products, 2)
	require.Len(t, store.suppliers, 1)
	require.Len(t, store.stocks, 2)
	marteau := store.products[testStoreID+"|REF-001"]
	require.NotNil(t, marteau)
	assert.Equal(t, "Marteau", marteau.Name)
	require.NotNil(t, marteau.SupplierID, "el producto debe quedar ligado al fournisseur")
}

// Caso 9: una fila con error no corta el resto de la importación.
func TestImportDataset_FilaConErrorNoCorta(t *testing.T) {
	app, store := buildAPIApp(t)
	csv := importCSVHeader + "\n" +
		",REF-001,Outillage,9.99,5,Fournisseur Général,10\n" +
		"Tournevis,REF-002,Outillage,4.50,3,Fournisseur Général,7\n"

	resp := doImport(t, app, tokenFor(t, "manager", testStoreID, false), "produits.csv", []byte(csv))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["produits_created"])

	errs, ok := stats["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].(string), "Ligne 2: "),
		"el error de fila debe citar la línea del archivo (cabecera = línea 1)")

	assert.Len(t, store.products, 1, "solo la fila válida debe persistir")
}

// Caso 10: sin token no se llega ni a la guarda de rol.
func TestImportDataset_SinToken(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := doImport(t, app, "", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la plantilla de importación
// ──────────────────────────────────────────────────────────────────────────────

func TestImportTemplate_DescargaCSV(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/produits/import-template", nil)
	req.Header.Set("Authorization", tokenFor(t, "vendeur", testStoreID, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "modele_import_produits.csv")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), importCSVHeader),
		"la plantilla debe empezar con la cabecera canónica")
}

func TestImportTemplate_DescargaXLSX(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/produits/import-template?format=xlsx", nil)
	req.Header.Set("Authorization", tokenFor(t, "manager", testStoreID, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "modele_import_produits.xlsx")
}

func TestImportTemplate_FormatoInvalido(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/produits/import-template?format=pdf", nil)
	req.Header.Set("Authorization", tokenFor(t, "manager", testStoreID, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruteo de stocks — la ruta estática de alertas no debe caer en :produitId
// ──────────────────────────────────────────────────────────────────────────────

func TestStocksAlertes_RutaEstatica(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks/alertes", nil)
	req.Header.Set("Authorization", tokenFor(t, "vendeur", testStoreID, false))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	items, ok := body["items"].([]interface{})
	require.True(t, ok, "la respuesta debe incluir items como lista")
	assert.Empty(t, items)
	assert.Equal(t, float64(0), body["total"])
}
