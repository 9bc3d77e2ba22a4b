// Package dataset implementa la importación de datasets CSV/Excel:
// control de acceso, parseo, validación de columnas y reconciliación
// fila a fila de fournisseurs, productos y stock.
package dataset

// Row es una fila del dataset con celdas indexadas por nombre de columna.
// Una clave ausente significa celda vacía o inexistente; nunca se guarda
// el string vacío como valor.
type Row map[string]string

// Get devuelve el valor crudo de la columna y si la celda estaba presente.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Table es el resultado de parsear un archivo: cabeceras en orden de
// aparición y filas de datos en orden del archivo.
type Table struct {
	Headers []string
	Rows    []Row
}

// MissingColumns devuelve las columnas de required que no aparecen en las
// cabeceras, en el orden de required. Comparación exacta (sensible a mayúsculas).
func (t *Table) MissingColumns(required []string) []string {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
