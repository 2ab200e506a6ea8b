package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente das três tabelas. Os índices únicos parciais
// (WHERE active) são o guarda definitivo das unicidades escopadas: a
// checagem read-then-write do serviço existe só para a mensagem amigável.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS categories_name_active_uq
	ON categories (name) WHERE active;

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL,
	stock       INTEGER NOT NULL DEFAULT 0,
	barcode     TEXT,
	category_id UUID NOT NULL REFERENCES categories (id),
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS products_barcode_active_uq
	ON products (barcode) WHERE active AND barcode IS NOT NULL;

CREATE INDEX IF NOT EXISTS products_category_idx ON products (category_id);

CREATE TABLE IF NOT EXISTS customers (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT,
	phone       TEXT,
	cpf         TEXT,
	address     TEXT,
	birth_date  DATE,
	password    TEXT,
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS customers_email_active_uq
	ON customers (email) WHERE active AND email IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS customers_cpf_active_uq
	ON customers (cpf) WHERE active AND cpf IS NOT NULL;
`

// EnsureSchema aplica o DDL idempotente na subida da aplicação.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
