package dataset

import "github.com/jhoicas/magasin-pro/internal/domain"

// TemplateSheetName es el nombre de la hoja en la plantilla Excel.
const TemplateSheetName = "Produits"

// templateSamples son las filas de ejemplo incluidas en la plantilla
// descargable. La segunda muestra que fournisseur puede ir vacío.
func templateSamples() []Row {
	return []Row{
		{
			"nom":          "Marteau",
			"reference":    "REF-001",
			"categorie":    "Outillage",
			"prix":         "9.99",
			"seuil_alerte": "5",
			"fournisseur":  "Fournisseur Général",
			"stock":        "10",
		},
		{
			"nom":          "Tournevis cruciforme",
			"reference":    "REF-002",
			"categorie":    "Outillage",
			"prix":         "4.50",
			"seuil_alerte": "10",
			"stock":        "25",
		},
	}
}

// Template genera la plantilla de importación en el formato pedido
// ("csv" o "xlsx") con las columnas requeridas y filas de ejemplo.
func (uc *ImportUseCase) Template(format string) ([]byte, error) {
	switch format {
	case "csv":
		return uc.templates.CSV(RequiredColumns, templateSamples())
	case "xlsx":
		return uc.templates.XLSX(TemplateSheetName, RequiredColumns, templateSamples())
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}
