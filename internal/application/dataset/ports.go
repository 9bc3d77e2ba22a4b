package dataset

import (
	"context"

	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// Parser convierte los bytes de un archivo en una Table según la
// extensión declarada en filename.
type Parser interface {
	Parse(data []byte, filename string) (*Table, error)
}

// TemplateWriter genera plantillas de importación descargables.
type TemplateWriter interface {
	CSV(headers []string, samples []Row) ([]byte, error)
	XLSX(sheetName string, headers []string, samples []Row) ([]byte, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa transacción. Si fn devuelve error se hace
// rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
