package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Rows come back as text so SQLite and CSV sources go through the same parsing.

type ProductRow struct {
	ID    string `db:"product_id"`
	Name  string `db:"product_name"`
	Price string `db:"price"`
}

type StockRow struct {
	ID             string `db:"product_id"`
	StockAvailable string `db:"stock_available"`
}

type PincodeRow struct {
	Pincode  string `db:"pincode"`
	Provider string `db:"logistics_provider"`
	TAT      string `db:"tat"`
}

type SourceRepo struct{ db *sqlx.DB }

func NewSourceRepo(db *sqlx.DB) *SourceRepo { return &SourceRepo{db: db} }

func (r *SourceRepo) Products(ctx context.Context) ([]ProductRow, error) {
	var out []ProductRow
	err := r.db.SelectContext(ctx, &out, `
		SELECT
		  COALESCE(CAST(product_id AS TEXT), '') AS product_id,
		  COALESCE(product_name, '')             AS product_name,
		  COALESCE(CAST(price AS TEXT), '')      AS price
		FROM products
		ORDER BY rowid
	`)
	return out, err
}

func (r *SourceRepo) Stock(ctx context.Context) ([]StockRow, error) {
	var out []StockRow
	err := r.db.SelectContext(ctx, &out, `
		SELECT
		  COALESCE(CAST(product_id AS TEXT), '') AS product_id,
		  COALESCE(stock_available, '')          AS stock_available
		FROM stock
		ORDER BY rowid
	`)
	return out, err
}

func (r *SourceRepo) Pincodes(ctx context.Context) ([]PincodeRow, error) {
	var out []PincodeRow
	err := r.db.SelectContext(ctx, &out, `
		SELECT
		  COALESCE(CAST(pincode AS TEXT), '') AS pincode,
		  COALESCE(logistics_provider, '')    AS logistics_provider,
		  COALESCE(tat, '')                   AS tat
		FROM pincodes
		ORDER BY rowid
	`)
	return out, err
}
