package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/magasin-pro/internal/application/report"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubStockRepo struct {
	rows      []repository.LowStockRow
	lastScope domain.Scope
}

func (s *stubStockRepo) ListLowStock(scope domain.Scope) ([]repository.LowStockRow, error) {
	s.lastScope = scope
	return s.rows, nil
}

func (s *stubStockRepo) Get(string, string) (*entity.Stock, error) { panic("no usado") }
func (s *stubStockRepo) Accumulate(string, string, int) (bool, error) {
	panic("no usado")
}
func (s *stubStockRepo) Set(*entity.Stock) error { panic("no usado") }
func (s *stubStockRepo) List(domain.Scope, int, int) ([]repository.StockRow, error) {
	panic("no usado")
}

type stubStoreRepo struct {
	stores []*entity.Store
}

func (s *stubStoreRepo) GetByID(id string) (*entity.Store, error) {
	for _, st := range s.stores {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, nil
}

func (s *stubStoreRepo) List(int, int) ([]*entity.Store, error) { return s.stores, nil }

func (s *stubStoreRepo) Create(*entity.Store) error { panic("no usado") }
func (s *stubStoreRepo) Update(*entity.Store) error { panic("no usado") }
func (s *stubStoreRepo) Delete(string) error        { panic("no usado") }

// capturePDF guarda los argumentos con los que se pidió el PDF.
type capturePDF struct {
	label string
	rows  []report.AlertPDFRow
}

func (c *capturePDF) GenerateAlertsPDF(_ context.Context, scopeLabel string, rows []report.AlertPDFRow) ([]byte, error) {
	c.label = scopeLabel
	c.rows = rows
	return []byte("%PDF-falso"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAlerts_MapeaFilasADTO(t *testing.T) {
	stockRepo := &stubStockRepo{rows: []repository.LowStockRow{
		{ProductID: "p1", ProductName: "Marteau", Reference: "REF1", StoreID: "s1", Quantity: 0, AlertThreshold: 5},
		{ProductID: "p2", ProductName: "Sierra", Reference: "REF2", StoreID: "s1", Quantity: 3, AlertThreshold: 3},
	}}
	uc := report.NewReportUseCase(stockRepo, &stubStoreRepo{}, &capturePDF{})

	out, err := uc.Alerts(domain.ScopeStore("s1"))
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Marteau", out.Items[0].Nom)
	assert.Equal(t, "REF1", out.Items[0].Reference)
	assert.Equal(t, 0, out.Items[0].Quantite)
	assert.Equal(t, 5, out.Items[0].SeuilAlerte)
	assert.Equal(t, domain.ScopeStore("s1"), stockRepo.lastScope)
}

func TestAlerts_SinFilas(t *testing.T) {
	uc := report.NewReportUseCase(&stubStockRepo{}, &stubStoreRepo{}, &capturePDF{})

	out, err := uc.Alerts(domain.ScopeAll())
	require.NoError(t, err)

	assert.Zero(t, out.Total)
	require.NotNil(t, out.Items, "items serializa como lista vacía, no null")
	assert.Empty(t, out.Items)
}

func TestAlertsPDF_EtiquetaDelMagasin(t *testing.T) {
	stockRepo := &stubStockRepo{rows: []repository.LowStockRow{
		{ProductID: "p1", ProductName: "Marteau", Reference: "REF1", StoreID: "s1", Quantity: 1, AlertThreshold: 5},
	}}
	storeRepo := &stubStoreRepo{stores: []*entity.Store{{ID: "s1", Name: "Magasin Centre"}}}
	gen := &capturePDF{}
	uc := report.NewReportUseCase(stockRepo, storeRepo, gen)

	data, err := uc.AlertsPDF(context.Background(), domain.ScopeStore("s1"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Equal(t, "Magasin Centre", gen.label)
	require.Len(t, gen.rows, 1)
	assert.Equal(t, "Magasin Centre", gen.rows[0].Magasin, "el nombre del magasin se resuelve por fila")
}

func TestAlertsPDF_TodosLosMagasins(t *testing.T) {
	stockRepo := &stubStockRepo{rows: []repository.LowStockRow{
		{ProductID: "p1", ProductName: "Marteau", Reference: "REF1", StoreID: "s1", Quantity: 1, AlertThreshold: 5},
		{ProductID: "p2", ProductName: "Sierra", Reference: "REF2", StoreID: "s2", Quantity: 2, AlertThreshold: 4},
	}}
	storeRepo := &stubStoreRepo{stores: []*entity.Store{
		{ID: "s1", Name: "Magasin Centre"},
		{ID: "s2", Name: "Magasin Nord"},
	}}
	gen := &capturePDF{}
	uc := report.NewReportUseCase(stockRepo, storeRepo, gen)

	_, err := uc.AlertsPDF(context.Background(), domain.ScopeAll())
	require.NoError(t, err)

	assert.Equal(t, report.AllStoresLabel, gen.label)
	require.Len(t, gen.rows, 2)
	assert.Equal(t, "Magasin Centre", gen.rows[0].Magasin)
	assert.Equal(t, "Magasin Nord", gen.rows[1].Magasin)
}
