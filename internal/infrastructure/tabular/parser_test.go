package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/infrastructure/tabular"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildXLSX genera un XLSX en memoria con la matriz dada (primera fila = cabeceras).
func buildXLSX(t *testing.T, grid [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, cells := range grid {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_CSVBasico(t *testing.T) {
	data := []byte("nom,reference,stock\nMartillo,REF1,5\nClavos ,REF2,\n")

	table, err := tabular.Parse(data, "productos.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"nom", "reference", "stock"}, table.Headers)
	require.Len(t, table.Rows, 2)

	v, ok := table.Rows[0].Get("nom")
	assert.True(t, ok)
	assert.Equal(t, "Martillo", v)

	// Los valores se entregan crudos, sin trim
	v, ok = table.Rows[1].Get("nom")
	assert.True(t, ok)
	assert.Equal(t, "Clavos ", v)

	// Celda vacía = clave ausente, no string vacío
	_, ok = table.Rows[1].Get("stock")
	assert.False(t, ok, "celda vacía debe reportarse como ausente")
}

func TestParse_CSVConBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("nom,prix\nTournevis,3.50\n")...)

	table, err := tabular.Parse(data, "export.csv")
	require.NoError(t, err)

	// El BOM no debe contaminar la primera cabecera
	assert.Equal(t, []string{"nom", "prix"}, table.Headers)
	require.Len(t, table.Rows, 1)
	v, _ := table.Rows[0].Get("nom")
	assert.Equal(t, "Tournevis", v)
}

func TestParse_CSVFilaCorta(t *testing.T) {
	// La segunda fila trae menos celdas que cabeceras: las que faltan quedan ausentes
	data := []byte("nom,reference,categorie\nSierra,REF9\n")

	table, err := tabular.Parse(data, "datos.csv")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	_, ok := table.Rows[0].Get("categorie")
	assert.False(t, ok)
}

func TestParse_CSVVacio_RetornaError(t *testing.T) {
	_, err := tabular.Parse([]byte{}, "vacio.csv")
	assert.Error(t, err, "CSV sin cabeceras debe fallar el parseo")
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParse_CSVNoUTF8_RetornaError(t *testing.T) {
	// Latin-1 crudo: "Ñ" = 0xD1, inválido como UTF-8
	data := []byte{'n', 'o', 'm', '\n', 0xD1, 0xD2, 0xD3, '\n'}

	_, err := tabular.Parse(data, "latin1.csv")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat,
		"un error de encoding es error de parseo, no de formato")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests XLSX / XLS
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_XLSXBasico(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"nom", "reference", "stock"},
		{"Martillo", "REF1", 5},
		{"Clavos", "REF2", ""},
	})

	table, err := tabular.Parse(data, "productos.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"nom", "reference", "stock"}, table.Headers)
	require.Len(t, table.Rows, 2)

	v, _ := table.Rows[0].Get("stock")
	assert.Equal(t, "5", v, "las celdas numéricas llegan como texto formateado")

	_, ok := table.Rows[1].Get("stock")
	assert.False(t, ok)
}

func TestParse_XLSXFilasVaciasSaltadas(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"nom", "reference"},
		{"Martillo", "REF1"},
		{"", ""},
		{"Sierra", "REF2"},
	})

	table, err := tabular.Parse(data, "productos.xlsx")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2, "las filas completamente vacías se descartan")
}

func TestParse_XLSXCorrupto_RetornaError(t *testing.T) {
	_, err := tabular.Parse([]byte("esto no es un zip"), "roto.xlsx")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParse_XLSCorrupto_RetornaError(t *testing.T) {
	_, err := tabular.Parse([]byte("esto no es un ole2"), "roto.xls")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests dispatch y columnas
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_ExtensionNoSoportada(t *testing.T) {
	_, err := tabular.Parse([]byte("{}"), "datos.json")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = tabular.Parse([]byte("texto"), "sin_extension")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParse_ExtensionMayusculas(t *testing.T) {
	table, err := tabular.Parse([]byte("nom\nMartillo\n"), "DATOS.CSV")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestMissingColumns_OrdenPreservado(t *testing.T) {
	table, err := tabular.Parse([]byte("reference,prix\nREF1,10\n"), "datos.csv")
	require.NoError(t, err)

	missing := table.MissingColumns([]string{"nom", "reference", "categorie", "prix", "stock"})
	assert.Equal(t, []string{"nom", "categorie", "stock"}, missing,
		"las faltantes deben salir en el orden de la lista requerida")
}

func TestMissingColumns_SensibleAMayusculas(t *testing.T) {
	table, err := tabular.Parse([]byte("Nom\nMartillo\n"), "datos.csv")
	require.NoError(t, err)

	missing := table.MissingColumns([]string{"nom"})
	assert.Equal(t, []string{"nom"}, missing, "la comparación de cabeceras es exacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplateCSV_RoundTrip(t *testing.T) {
	headers := []string{"nom", "reference", "stock"}
	samples := []dataset.Row{{"nom": "Exemple", "reference": "REF-001", "stock": "10"}}

	data, err := tabular.TemplateCSV(headers, samples)
	require.NoError(t, err)

	table, err := tabular.Parse(data, "template.csv")
	require.NoError(t, err)
	assert.Equal(t, headers, table.Headers)
	require.Len(t, table.Rows, 1)
	v, _ := table.Rows[0].Get("reference")
	assert.Equal(t, "REF-001", v)
}

func TestTemplateXLSX_RoundTrip(t *testing.T) {
	headers := []string{"nom", "reference"}
	samples := []dataset.Row{{"nom": "Exemple", "reference": "REF-001"}}

	data, err := tabular.TemplateXLSX("Produits", headers, samples)
	require.NoError(t, err)

	table, err := tabular.Parse(data, "template.xlsx")
	require.NoError(t, err)
	assert.Equal(t, headers, table.Headers)
	require.Len(t, table.Rows, 1)
	v, _ := table.Rows[0].Get("nom")
	assert.Equal(t, "Exemple", v)
}
