// migrate crea el esquema de la base de datos y siembra la cuenta
// super_admin inicial.
//
// Uso: go run ./cmd/migrate
// Lee la conexión de DATABASE_URL (o DB_HOST, DB_PORT, etc.) y las
// credenciales de la cuenta semilla de SEED_ADMIN_USERNAME y
// SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/factory-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/factory-pro/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	position    TEXT NOT NULL,
	email       TEXT NOT NULL,
	phone       TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at  TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS employees_email_idx ON employees (email);
CREATE UNIQUE INDEX IF NOT EXISTS employees_phone_idx ON employees (phone);

CREATE TABLE IF NOT EXISTS products (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	price           NUMERIC(12,2) NOT NULL,
	stock_quantity  INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at      TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS customers (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	phone       TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at  TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS customers_email_idx ON customers (email);
CREATE UNIQUE INDEX IF NOT EXISTS customers_phone_idx ON customers (phone);

CREATE TABLE IF NOT EXISTS orders (
	id           BIGSERIAL PRIMARY KEY,
	customer_id  BIGINT NOT NULL REFERENCES customers (id),
	product_id   BIGINT NOT NULL REFERENCES products (id),
	quantity     INTEGER NOT NULL,
	total_price  NUMERIC(12,2) NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at   TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS production (
	id                 BIGSERIAL PRIMARY KEY,
	product_id         BIGINT NOT NULL REFERENCES products (id),
	quantity_produced  INTEGER NOT NULL,
	date_produced      DATE NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at         TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS users (
	id             BIGSERIAL PRIMARY KEY,
	username       TEXT NOT NULL,
	password_hash  TEXT NOT NULL,
	role           TEXT NOT NULL,
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at     TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS users_username_idx ON users (username);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema creado")

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		fmt.Println("SEED_ADMIN_PASSWORD vacío, se omite la cuenta semilla")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, role, is_active)
		VALUES ($1, $2, 'super_admin', TRUE)
		ON CONFLICT (username) DO NOTHING`, username, string(hash))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sembrar super_admin: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() == 0 {
		fmt.Printf("la cuenta %q ya existía, sin cambios\n", username)
		return
	}
	fmt.Printf("cuenta super_admin %q creada\n", username)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
