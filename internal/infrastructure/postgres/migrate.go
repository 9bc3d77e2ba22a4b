package postgres

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/magasin-pro/pkg/logger"
)

// Migrate aplica las migraciones goose pendientes del directorio dir.
// Goose trabaja sobre database/sql, así que se abre un *sql.DB puente
// que comparte las conexiones del pool pgx.
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir string, log *logger.Logger) error {
	if dir == "" {
		return nil // migraciones desactivadas por configuración
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("directorio de migraciones %q: %w", dir, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	goose.SetLogger(&gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

// gooseLogger redirige los logs de goose al logger estructurado de la app.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Msgf(format, v...)
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(format, v...)
}
