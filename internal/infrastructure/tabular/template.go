package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
)

// TemplateWriter implementa dataset.TemplateWriter sobre las funciones
// del paquete.
type TemplateWriter struct{}

var _ dataset.TemplateWriter = (*TemplateWriter)(nil)

func (TemplateWriter) CSV(headers []string, samples []dataset.Row) ([]byte, error) {
	return TemplateCSV(headers, samples)
}

func (TemplateWriter) XLSX(sheetName string, headers []string, samples []dataset.Row) ([]byte, error) {
	return TemplateXLSX(sheetName, headers, samples)
}

// TemplateCSV genera un CSV con la fila de cabeceras y filas de ejemplo.
// Las celdas de ejemplo se resuelven por nombre de cabecera.
func TemplateCSV(headers []string, samples []dataset.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("escribir cabeceras: %w", err)
	}
	for _, sample := range samples {
		record := make([]string, len(headers))
		for i, h := range headers {
			record[i] = sample[h]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila de ejemplo: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TemplateXLSX genera un XLSX de una hoja con cabeceras en negrita y
// filas de ejemplo debajo.
func TemplateXLSX(sheetName string, headers []string, samples []dataset.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("crear estilo: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, colName, colName, 18); err != nil {
			return nil, err
		}
	}

	for rowIdx, sample := range samples {
		for colIdx, h := range headers {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, sample[h]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
