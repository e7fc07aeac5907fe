package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/chirosmith/portal-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Diagnostics implements the store checks used by health and test-db routes.
type Diagnostics struct {
	db *sqlx.DB
}

func NewDiagnostics(db *sqlx.DB) *Diagnostics {
	return &Diagnostics{db: db}
}

func (d *Diagnostics) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := d.db.GetContext(ctx, &now, "SELECT NOW()"); err != nil {
		return time.Time{}, fmt.Errorf("failed to query server time: %w", err)
	}
	return now, nil
}

func (d *Diagnostics) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}
