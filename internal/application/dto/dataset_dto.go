package dto

// ImportStats contadores del resultado de una importación de dataset.
// Errors siempre serializa como lista (vacía si no hubo errores de fila).
type ImportStats struct {
	ProduitsCreated     int      `json:"produits_created"`
	ProduitsUpdated     int      `json:"produits_updated"`
	FournisseursCreated int      `json:"fournisseurs_created"`
	StocksCreated       int      `json:"stocks_created"`
	StocksUpdated       int      `json:"stocks_updated"`
	Errors              []string `json:"errors"`
}

// NewImportStats inicializa los contadores con la lista de errores no nula.
func NewImportStats() *ImportStats {
	return &ImportStats{Errors: []string{}}
}

// ImportResponse respuesta de una importación que llegó a procesar filas.
// Las importaciones con errores de fila siguen siendo respuestas de éxito.
type ImportResponse struct {
	Message string      `json:"message"`
	Stats   ImportStats `json:"stats"`
}

// Merge suma los contadores de other (no los errores, que se gestionan
// por fila en quien llama).
func (s *ImportStats) Merge(other ImportStats) {
	s.ProduitsCreated += other.ProduitsCreated
	s.ProduitsUpdated += other.ProduitsUpdated
	s.FournisseursCreated += other.FournisseursCreated
	s.StocksCreated += other.StocksCreated
	s.StocksUpdated += other.StocksUpdated
}
