package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type zapGooseLogger struct {
	*zap.Logger
}

func (z *zapGooseLogger) Fatalf(format string, v ...any) {
	z.Fatal(fmt.Sprintf(format, v...))
}

func (z *zapGooseLogger) Printf(format string, v ...any) {
	z.Info(fmt.Sprintf(format, v...))
}

// Migrate applies the embedded schema migrations through the database/sql
// pgx driver; goose does not speak the pgx v5 native interface.
func Migrate(dsn string, logger *zap.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetLogger(&zapGooseLogger{Logger: logger})
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
