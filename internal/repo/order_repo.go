package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"grocerystore/internal/db"
	"grocerystore/internal/models"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type OrderRepo struct {
	db  *sql.DB
	log *zerolog.Logger
	now func() time.Time
}

func NewOrderRepo(conn *sql.DB, log *zerolog.Logger) *OrderRepo {
	return &OrderRepo{db: conn, log: log, now: time.Now}
}

func (r *OrderRepo) AllOrders(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT order_id, customer_name, date, total
		FROM orders
		ORDER BY date DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		var date sql.NullTime
		if err := rows.Scan(&order.ID, &order.CustomerName, &date, &order.Total); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.Date = formatDate(date)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns the order header with its line items, or ErrNotFound.
func (r *OrderRepo) GetOrder(ctx context.Context, orderID int) (*models.OrderWithDetails, error) {
	query := `
		SELECT order_id, customer_name, date, total
		FROM orders
		WHERE order_id = $1`

	var result models.OrderWithDetails
	var date sql.NullTime
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&result.ID, &result.CustomerName, &date, &result.Total,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	result.Date = formatDate(date)

	items, err := r.orderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	result.Items = items
	return &result, nil
}

func (r *OrderRepo) orderLines(ctx context.Context, orderID int) ([]models.OrderLine, error) {
	// LEFT JOIN: позиция остаётся видна даже если товар уже удалён
	query := `
		SELECT d.order_id, d.product_id, d.quantity, d.total,
			COALESCE(p.product_name, ''), COALESCE(p.price_per_unit, 0)
		FROM order_details d
		LEFT JOIN product p ON p.product_id = d.product_id
		WHERE d.order_id = $1
		ORDER BY d.product_id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order %d details: %w", orderID, err)
	}
	defer rows.Close()

	items := []models.OrderLine{}
	for rows.Next() {
		var item models.OrderLine
		if err := rows.Scan(
			&item.OrderID, &item.ProductID, &item.Quantity, &item.Total,
			&item.ProductName, &item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order %d details: %w", orderID, err)
	}
	return items, nil
}

func (r *OrderRepo) Statistics(ctx context.Context) (models.OrderStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders`

	var stats models.OrderStats
	var revenue decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalOrders, &revenue); err != nil {
		return models.OrderStats{}, fmt.Errorf("order statistics: %w", err)
	}
	stats.TotalRevenue = decimal.Zero
	if revenue.Valid {
		stats.TotalRevenue = revenue.Decimal
	}
	return stats, nil
}

// DeleteOrder removes the order and its details in one transaction and reports
// whether the order row existed.
func (r *OrderRepo) DeleteOrder(ctx context.Context, orderID int) (bool, error) {
	var deleted bool
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		// сначала позиции, потом сам заказ
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_details WHERE order_id = $1`, orderID); err != nil {
			return fmt.Errorf("delete order %d details: %w", orderID, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
		if err != nil {
			return fmt.Errorf("delete order %d: %w", orderID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete order %d: %w", orderID, err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		r.log.Error().Err(err).Int("order_id", orderID).Msg("order delete failed")
		return false, err
	}
	return deleted, nil
}

// InsertOrder stores the header stamped with the current time and then all of
// its details under the generated id. Nothing is kept if either step fails.
func (r *OrderRepo) InsertOrder(ctx context.Context, order models.OrderRequest) (int, error) {
	var orderID int
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO orders (customer_name, date, total)
			VALUES ($1, $2, $3)
			RETURNING order_id`
		err := tx.QueryRowContext(ctx, query,
			order.CustomerName, r.now(), order.GrandTotal,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if len(order.Details) == 0 {
			return nil
		}
		detailsQuery, args := orderDetailsInsert(orderID, order.Details)
		if _, err := tx.ExecContext(ctx, detailsQuery, args...); err != nil {
			return fmt.Errorf("insert order %d details: %w", orderID, err)
		}
		return nil
	})
	if err != nil {
		r.log.Error().Err(err).Str("customer", order.CustomerName).Msg("order insert failed")
		return 0, err
	}
	return orderID, nil
}

// orderDetailsInsert builds one multi-row INSERT for all details.
func orderDetailsInsert(orderID int, details []models.OrderDetailRequest) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO order_details (order_id, product_id, quantity, total) VALUES ")

	args := make([]any, 0, len(details)*4)
	for i, d := range details {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := len(args)
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, orderID, d.ProductID, d.Quantity, d.TotalPrice)
	}
	return sb.String(), args
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(models.DateLayout)
}
