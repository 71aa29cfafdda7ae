package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE unit_convert (unit_id INTEGER PRIMARY KEY, unit_name TEXT NOT NULL)`)
	require.NoError(t, err)
	return conn
}

func countUnits(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM unit_convert`).Scan(&n))
	return n
}

func TestWithTxCommits(t *testing.T) {
	conn := newTestDB(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO unit_convert (unit_name) VALUES ($1)`, "kg"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO unit_convert (unit_name) VALUES ($1)`, "each")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countUnits(t, conn))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	conn := newTestDB(t)
	boom := errors.New("second statement failed")

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO unit_convert (unit_name) VALUES ($1)`, "kg"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countUnits(t, conn))
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	conn := newTestDB(t)

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), conn, func(tx *sql.Tx) error {
			if _, err := tx.Exec(`INSERT INTO unit_convert (unit_name) VALUES ($1)`, "kg"); err != nil {
				return err
			}
			panic("boom")
		})
	})
	assert.Equal(t, 0, countUnits(t, conn))
}
