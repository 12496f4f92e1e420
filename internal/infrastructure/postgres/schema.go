package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
)

// Esquema de las seis tablas. CREATE IF NOT EXISTS ejecutado al arranque; no
// hay versionado de esquema (las tablas nunca cambian entre revisiones).
const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY,
	username      text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	role          text NOT NULL CHECK (role IN ('USER','ADMIN')),
	can_read      boolean NOT NULL DEFAULT false,
	can_create    boolean NOT NULL DEFAULT false,
	can_delete    boolean NOT NULL DEFAULT false,
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id         bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name       text NOT NULL UNIQUE,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS units (
	id         bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name       text NOT NULL UNIQUE,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id            bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name          text NOT NULL,
	category      text NOT NULL DEFAULT '',
	unit          text NOT NULL DEFAULT '',
	min_threshold numeric(14,3) NOT NULL DEFAULT 0,
	unit_price    numeric(14,2) NOT NULL DEFAULT 0,
	balance       numeric(14,3) NOT NULL DEFAULT 0,
	created_at    timestamptz NOT NULL DEFAULT now(),
	updated_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS movements (
	id             bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	transaction_id uuid NOT NULL,
	product_id     bigint NOT NULL REFERENCES products(id),
	kind           text NOT NULL CHECK (kind IN ('IN','OUT')),
	quantity       numeric(14,3) NOT NULL CHECK (quantity > 0),
	unit_price     numeric(14,2) NOT NULL DEFAULT 0,
	username       text NOT NULL,
	reason         text NOT NULL DEFAULT '',
	created_at     timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movements_created_at ON movements (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id);

CREATE TABLE IF NOT EXISTS audit_log (
	id         bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	username   text NOT NULL,
	action     text NOT NULL,
	detail     text NOT NULL DEFAULT '',
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_audit_log_created_at ON audit_log (created_at DESC);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// SeedAdmin garantiza que exista al menos un ADMIN: si la tabla users está
// vacía inserta admin/admin123 con rol ADMIN y los tres flags. Pasa por el
// repositorio de usuarios, igual que el resto de las altas.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	repo := NewUserRepository(pool)

	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin: %w", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Perms:        entity.AllPermissions(),
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(admin); err != nil {
		return fmt.Errorf("insertar admin inicial: %w", err)
	}
	return nil
}
