// Package tabular parsea archivos tabulares (CSV, XLSX, XLS) a filas con
// celdas nombradas por cabecera. Los valores se entregan crudos, sin trim:
// la interpretación es responsabilidad del consumidor.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/domain"
)

// Parser implementa dataset.Parser sobre las funciones del paquete.
type Parser struct{}

var _ dataset.Parser = (*Parser)(nil)

func (Parser) Parse(data []byte, filename string) (*dataset.Table, error) {
	return Parse(data, filename)
}

// Parse despacha por extensión del nombre declarado. Una extensión no
// reconocida devuelve domain.ErrUnsupportedFormat; cualquier otro fallo
// (encoding inválido, binario corrupto) es un error de parseo.
func Parse(data []byte, filename string) (*dataset.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(data)
	case ".xlsx":
		return parseXLSX(data)
	case ".xls":
		return parseXLS(data)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func parseCSV(data []byte) (*dataset.Table, error) {
	hasBOM := bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16LE) ||
		bytes.HasPrefix(data, bomUTF16BE)
	if !hasBOM && !utf8.Valid(data) {
		return nil, fmt.Errorf("contenido no es UTF-8 válido")
	}

	// BOMOverride quita el BOM UTF-8 y decodifica UTF-16 si el archivo
	// viene de un export de Excel con BOM.
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(bytes.NewReader(data), dec))
	reader.FieldsPerRecord = -1 // filas cortas se rellenan como celdas ausentes

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("archivo vacío, sin fila de cabeceras")
		}
		return nil, fmt.Errorf("leer cabeceras CSV: %w", err)
	}

	t := &dataset.Table{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila CSV: %w", err)
		}
		t.Rows = append(t.Rows, rowFromCells(headers, record))
	}
	return t, nil
}

func parseXLSX(data []byte) (*dataset.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el XLSX no contiene hojas")
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return tableFromGrid(grid), nil
}

func parseXLS(data []byte) (*dataset.Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir XLS: %w", err)
	}
	if wb.GetNumberSheets() == 0 {
		return nil, fmt.Errorf("el XLS no contiene hojas")
	}
	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("leer hoja XLS: %w", err)
	}

	var grid [][]string
	for i := 0; i <= sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		var cells []string
		for j := 0; ; j++ {
			cell, err := row.GetCol(j)
			if err != nil {
				break
			}
			cells = append(cells, cell.GetString())
		}
		grid = append(grid, cells)
	}
	return tableFromGrid(grid), nil
}

// tableFromGrid arma la tabla desde una matriz cruda: primera fila como
// cabeceras, filas completamente vacías descartadas.
func tableFromGrid(grid [][]string) *dataset.Table {
	t := &dataset.Table{}
	if len(grid) == 0 {
		return t
	}
	t.Headers = grid[0]
	for _, cells := range grid[1:] {
		if allEmpty(cells) {
			continue
		}
		t.Rows = append(t.Rows, rowFromCells(t.Headers, cells))
	}
	return t
}

func rowFromCells(headers, cells []string) dataset.Row {
	row := make(dataset.Row, len(headers))
	for i, h := range headers {
		if i >= len(cells) || cells[i] == "" {
			continue
		}
		row[h] = cells[i]
	}
	return row
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
