// Package migrations embeds the goose migrations of both databases. Each
// binary applies its own set on startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed customer/*.sql delivery/*.sql
var fs embed.FS

func UpCustomer(ctx context.Context, dsn string) error {
	return up(ctx, dsn, "customer")
}

func UpDelivery(ctx context.Context, dsn string) error {
	return up(ctx, dsn, "delivery")
}

func up(ctx context.Context, dsn, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(fs)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("apply %s migrations: %w", dir, err)
	}
	return nil
}
