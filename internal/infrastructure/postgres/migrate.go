package postgres

import (
	"context"
	"fmt"
)

// schema es idempotente: se puede ejecutar en cada arranque.
const schema = `
CREATE TABLE IF NOT EXISTS categoria (
	id          BIGSERIAL PRIMARY KEY,
	nombre      TEXT NOT NULL UNIQUE,
	descripcion TEXT,
	status      BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS producto (
	id           BIGSERIAL PRIMARY KEY,
	nombre       TEXT NOT NULL,
	precio       NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (precio >= 0),
	stock        INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	descripcion  TEXT,
	status       BOOLEAN NOT NULL DEFAULT TRUE,
	categoria_id BIGINT REFERENCES categoria(id)
);

CREATE INDEX IF NOT EXISTS idx_producto_categoria_id ON producto (categoria_id);
CREATE INDEX IF NOT EXISTS idx_producto_nombre ON producto (nombre);
`

// Migrate crea las tablas categoria y producto si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
