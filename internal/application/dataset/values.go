package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// trimmedCell devuelve el valor de la columna sin espacios y si la celda
// estaba presente. Una celda presente puede quedar vacía tras el trim.
func trimmedCell(row Row, col string) (string, bool) {
	v, ok := row.Get(col)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// parsePrice interpreta la celda como precio. Celda ausente, vacía o no
// numérica vale 0 sin producir error de fila.
func parsePrice(row Row, col string) decimal.Decimal {
	v, ok := trimmedCell(row, col)
	if !ok || v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseIntLenient convierte a entero aceptando decimales por truncamiento
// ("3.0" y "3.7" valen 3).
func parseIntLenient(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// parseThreshold interpreta la celda como seuil de alerta. Celda ausente,
// vacía o no numérica vale 0 sin producir error de fila.
func parseThreshold(row Row, col string) int {
	v, ok := trimmedCell(row, col)
	if !ok || v == "" {
		return 0
	}
	n, ok := parseIntLenient(v)
	if !ok {
		return 0
	}
	return n
}

// parseStock interpreta la celda como cantidad inicial de stock. Solo las
// cantidades estrictamente positivas cuentan; celdas ausentes, vacías, no
// numéricas o <= 0 se ignoran en silencio.
func parseStock(row Row, col string) (int, bool) {
	v, ok := trimmedCell(row, col)
	if !ok || v == "" {
		return 0, false
	}
	n, ok := parseIntLenient(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}
