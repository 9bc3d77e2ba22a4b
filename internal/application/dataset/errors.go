package dataset

import "strings"

// ParseError indica que los bytes del archivo no pudieron leerse como tabla.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "error leyendo el archivo: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError indica que el archivo no trae todas las columnas requeridas.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "columnas faltantes: " + strings.Join(e.Missing, ", ")
}
