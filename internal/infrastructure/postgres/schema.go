package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. El esquema es pequeño y
// estable, así que se materializa al arranque en vez de usar un motor de
// migraciones.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		sku         TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		lot         TEXT NOT NULL DEFAULT '',
		expiry      DATE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS locations (
		id          UUID PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		warehouse   TEXT NOT NULL DEFAULT '',
		aisle       TEXT NOT NULL DEFAULT '',
		rack_level  TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS stock_entries (
		product_id  UUID NOT NULL REFERENCES products(id),
		location_id UUID NOT NULL REFERENCES locations(id),
		quantity    BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (product_id, location_id)
	);

	CREATE TABLE IF NOT EXISTS movements (
		id          UUID PRIMARY KEY,
		type        TEXT NOT NULL CHECK (type IN ('entrada', 'saida')),
		quantity    BIGINT NOT NULL CHECK (quantity > 0),
		product_id  UUID NOT NULL REFERENCES products(id),
		location_id UUID NOT NULL REFERENCES locations(id),
		occurred_at TIMESTAMPTZ NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_movements_occurred_at ON movements (occurred_at);
	CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id);
	CREATE INDEX IF NOT EXISTS idx_movements_location ON movements (location_id);`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
