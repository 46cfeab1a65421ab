package db

import (
	"context"
	"database/sql"
	"embed"
	"log"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var deliverySchema embed.FS

// Migrate brings the deliveries schema up to date from the embedded
// migration files. A nil handle (memory-repo mode) is a no-op.
func Migrate(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(deliverySchema)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, database, "migrations"); err != nil {
		return err
	}
	if version, err := goose.GetDBVersion(database); err == nil {
		log.Printf("deliveries schema at version %d", version)
	}
	return nil
}
