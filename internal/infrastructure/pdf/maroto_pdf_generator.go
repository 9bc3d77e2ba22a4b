// Package pdf implementa la generación del informe de alertas de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: MagasinPro  │  RAPPORT DES ALERTES DE STOCK        │
//	│                      │  Magasin + fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Référence | Produit | Magasin | Quantité | Seuil    │
//	│  (cantidad resaltada en rojo cuando el producto está a 0)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de alertas + pie                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/magasin-pro/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 192, Green: 36, Blue: 36}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.AlertPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.AlertPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAlertsPDF genera el informe y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAlertsPDF(_ context.Context, scopeLabel string, rows []report.AlertPDFRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport des alertes de stock", true).
		WithAuthor("MagasinPro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(scopeLabel, time.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(rows) == 0 {
		m.AddRows(emptyRow())
	}
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(rows)))
	m.AddRows(footerRow(time.Now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq), título del informe + magasin + fecha (der).
func headerRow(scopeLabel string, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(5).Add(
			text.New("MagasinPro", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Gestion de stock multi-magasins", props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
		col.New(7).Add(
			text.New("RAPPORT DES ALERTES DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(scopeLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
			text.New("Généré le "+now.Format("02/01/2006 à 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Référence", 2, align.Left),
		h("Produit", 4, align.Left),
		h("Magasin", 2, align.Left),
		h("Quantité", 2, align.Right),
		h("Seuil", 2, align.Right),
	)
}

// tableRows: una fila por alerta. Las rupturas (cantidad 0) salen en rojo.
func tableRows(rows []report.AlertPDFRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		qtyColor := colorGray
		qtyStyle := fontstyle.Normal
		if r.Quantite == 0 {
			qtyColor = colorDanger
			qtyStyle = fontstyle.Bold
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Reference, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(r.Produit, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(r.Magasin, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(strconv.Itoa(r.Quantite), props.Text{
				Style: qtyStyle, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor,
			})),
			col.New(2).Add(text.New(strconv.Itoa(r.Seuil), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// emptyRow: mensaje cuando no hay ninguna alerta.
func emptyRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Aucune alerte de stock.", props.Text{
			Size: 9, Align: align.Center, Top: 4, Color: colorGray,
		}),
	))
}

// totalRow: recuento de alertas del informe.
func totalRow(total int) core.Row {
	label := "produits en alerte"
	if total == 1 {
		label = "produit en alerte"
	}
	return row.New(10).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total : %d %s", total, label),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary},
		)),
	)
}

// footerRow: pie del documento.
func footerRow(now time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Document généré par MagasinPro le "+now.Format("02/01/2006")+
				". Les quantités indiquées sont celles au moment de la génération.",
			props.Text{Size: 6.5, Color: colorGray, Top: 3},
		),
	))
}
