package repo

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// schema mirrors migrations/*.sql in SQLite types.
const schema = `
CREATE TABLE unit_convert (
	unit_id   INTEGER PRIMARY KEY,
	unit_name TEXT NOT NULL
);
CREATE TABLE product (
	product_id     INTEGER PRIMARY KEY,
	product_name   TEXT NOT NULL,
	unit           INTEGER NOT NULL,
	price_per_unit NUMERIC NOT NULL
);
CREATE TABLE orders (
	order_id      INTEGER PRIMARY KEY,
	customer_name TEXT NOT NULL,
	date          TIMESTAMP,
	total         NUMERIC NOT NULL
);
CREATE TABLE order_details (
	order_id   INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	quantity   NUMERIC NOT NULL,
	total      NUMERIC NOT NULL
);
INSERT INTO unit_convert (unit_id, unit_name) VALUES (1, 'each'), (2, 'kg');
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// одно соединение, иначе у каждого своя :memory: база
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(schema)
	require.NoError(t, err)
	return conn
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func count(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(query, args...).Scan(&n))
	return n
}
