package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocerystore/internal/models"

	"github.com/rs/zerolog"
)

// lowStockItems is reported as is: the schema has no stock quantity column.
const lowStockItems = 0

type ProductRepo struct {
	db  *sql.DB
	log *zerolog.Logger
}

func NewProductRepo(conn *sql.DB, log *zerolog.Logger) *ProductRepo {
	return &ProductRepo{db: conn, log: log}
}

func (r *ProductRepo) AllProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT p.product_id, p.product_name, p.unit, p.price_per_unit, u.unit_name
		FROM product p
		INNER JOIN unit_convert u ON p.unit = u.unit_id
		ORDER BY p.product_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() { // построчно, пока есть данные
		var product models.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.UnitID, &product.PricePerUnit, &product.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product with its unit name, or ErrNotFound.
func (r *ProductRepo) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	query := `
		SELECT p.product_id, p.product_name, p.unit, p.price_per_unit, u.unit_name
		FROM product p
		INNER JOIN unit_convert u ON p.unit = u.unit_id
		WHERE p.product_id = $1`

	var product models.Product
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID, &product.Name, &product.UnitID, &product.PricePerUnit, &product.UnitName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}
	return &product, nil
}

func (r *ProductRepo) CreateProduct(ctx context.Context, product *models.Product) (int, error) {
	query := `
		INSERT INTO product (product_name, unit, price_per_unit)
		VALUES ($1, $2, $3)
		RETURNING product_id`

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.UnitID, product.PricePerUnit,
	).Scan(&product.ID)
	if err != nil {
		r.log.Error().Err(err).Str("product", product.Name).Msg("product insert failed")
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return product.ID, nil
}

// UpdateProduct replaces name, unit and price of the product with product.ID.
// The returned id is the one passed in, whether or not a row matched.
func (r *ProductRepo) UpdateProduct(ctx context.Context, product *models.Product) (int, error) {
	query := `
		UPDATE product
		SET product_name = $1, unit = $2, price_per_unit = $3
		WHERE product_id = $4`

	_, err := r.db.ExecContext(ctx, query,
		product.Name, product.UnitID, product.PricePerUnit, product.ID,
	)
	if err != nil {
		r.log.Error().Err(err).Int("product_id", product.ID).Msg("product update failed")
		return 0, fmt.Errorf("update product %d: %w", product.ID, err)
	}
	return product.ID, nil
}

// DeleteProduct deletes by id; deleting a missing id is not an error.
func (r *ProductRepo) DeleteProduct(ctx context.Context, productID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM product WHERE product_id = $1`, productID)
	if err != nil {
		r.log.Error().Err(err).Int("product_id", productID).Msg("product delete failed")
		return fmt.Errorf("delete product %d: %w", productID, err)
	}
	return nil
}

func (r *ProductRepo) Statistics(ctx context.Context) (models.ProductStats, error) {
	var stats models.ProductStats
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product`).Scan(&stats.TotalProducts)
	if err != nil {
		return models.ProductStats{}, fmt.Errorf("product statistics: %w", err)
	}
	stats.LowStockItems = lowStockItems
	return stats, nil
}
