package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "clinicart/internal/log"
)

// OpenDB opens the SQLite catalog source, creating the tables and demo rows
// when the database is empty.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A :memory: database lives and dies with its connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// The tables mirror the CSV exports column for column, duplicates and all;
// cleaning rows up is the loader's job.
func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  product_id   INTEGER,
  product_name TEXT,
  price        NUMERIC
);

CREATE TABLE IF NOT EXISTS stock(
  product_id      INTEGER,
  stock_available TEXT
);

CREATE TABLE IF NOT EXISTS pincodes(
  pincode            INTEGER,
  logistics_provider TEXT,
  tat                TEXT
);
CREATE INDEX IF NOT EXISTS idx_pincodes_pincode ON pincodes(pincode);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	applog.Info(nil, "seed.demo", map[string]any{"tables": []string{"products", "stock", "pincodes"}})

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(product_id, product_name, price) VALUES
	  (1, 'Digital Thermometer', 349.00),
	  (2, 'Pulse Oximeter', 1299.00),
	  (3, 'Vitamin C Serum', 599.50),
	  (4, 'Hyaluronic Acid Cream', 845.00),
	  (5, 'Salicylic Acid Face Wash', 399.00),
	  (6, 'Anti-Dandruff Shampoo', 275.00),
	  (7, 'Blood Pressure Monitor', 2199.00),
	  (8, 'Stethoscope', 1599.00)`)

	tx.MustExec(`INSERT INTO stock(product_id, stock_available) VALUES
	  (1, 'true'),
	  (2, 'true'),
	  (3, 'false'),
	  (4, 'true'),
	  (5, 'true'),
	  (6, 'false'),
	  (7, 'true'),
	  (8, 'true')`)

	tx.MustExec(`INSERT INTO pincodes(pincode, logistics_provider, tat) VALUES
	  (110001, 'Provider A', '2'),
	  (400001, 'Provider B', '3'),
	  (560001, 'Provider C', '5'),
	  (110001, 'Provider B', '4')`)

	return tx.Commit()
}
