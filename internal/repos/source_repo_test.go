package repos_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicart/internal/repos"
)

func TestOpenDB_SeedsDemoData(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repos.NewSourceRepo(db)
	ctx := context.Background()

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, repos.ProductRow{ID: "1", Name: "Digital Thermometer", Price: "349"}, products[0])
	assert.Equal(t, "599.5", products[2].Price)

	stock, err := repo.Stock(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 8)
	assert.Equal(t, "false", stock[2].StockAvailable)

	pins, err := repo.Pincodes(ctx)
	require.NoError(t, err)
	require.Len(t, pins, 4)
	// Duplicates are kept in source order; the loader decides who wins.
	assert.Equal(t, repos.PincodeRow{Pincode: "110001", Provider: "Provider A", TAT: "2"}, pins[0])
	assert.Equal(t, repos.PincodeRow{Pincode: "110001", Provider: "Provider B", TAT: "4"}, pins[3])
}

func TestOpenDB_SeedIsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "catalog.db")

	db, err := repos.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = repos.OpenDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM products`))
	assert.Equal(t, 8, n)
}

func TestSourceRepo_NullColumnsBecomeEmpty(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO pincodes(pincode, logistics_provider, tat) VALUES (NULL, NULL, NULL)`)
	require.NoError(t, err)

	pins, err := repos.NewSourceRepo(db).Pincodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repos.PincodeRow{}, pins[len(pins)-1])
}

func TestSourceRepo_QueryErrorsSurface(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	boom := errors.New("disk I/O error")
	mock.ExpectQuery("FROM stock").WillReturnError(boom)

	repo := repos.NewSourceRepo(sqlx.NewDb(mockDB, "sqlmock"))
	_, err = repo.Stock(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
