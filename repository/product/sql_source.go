package product

import (
	"context"
	"strings"

	"github.com/ecomstore/catalog/model"
	"github.com/jmoiron/sqlx"
)

// SQL is a CatalogSource backed by a MySQL product table. It is a plain
// passthrough: filtering, sorting and pagination stay in the query pipeline.
type SQL struct {
	conn *sqlx.DB
}

func NewSQLSource(conn *sqlx.DB) CatalogSource {
	return &SQL{conn: conn}
}

const listProductsQuery = `SELECT id, name, price, original_price, discount, category, brand, rating, reviews, availability, in_stock, description, image, tags
FROM product
ORDER BY id`

type productRow struct {
	model.Product
	RawTags string `db:"tags"`
}

func (s *SQL) FetchAll(ctx context.Context) ([]model.Product, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var row productRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		p := row.Product
		if row.RawTags != "" {
			p.Tags = strings.Split(row.RawTags, ",")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
