package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

const orderColumns = `id, order_number, total_amount::text, status, customer_name, table_number, created_at, updated_at`

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o      model.Order
		status string
		total  string
	)
	err := row.Scan(&o.ID, &o.Number, &total, &status, &o.CustomerName, &o.TableNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	return &o, nil
}

// Create inserts the order and every line item inside one transaction, so a
// reader can never observe the order without its full set of lines. A unique
// violation on order_number surfaces as ErrOrderNumberTaken for the caller to
// regenerate the token.
func (r *orderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (order_number, total_amount, status, customer_name, table_number)
                             VALUES ($1, $2, $3, $4, $5)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.Number, order.TotalAmount.String(), string(order.Status),
			order.CustomerName, order.TableNumber,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menu_item_id, quantity, price)
                            VALUES ($1, $2, $3, $4)
                            RETURNING id`
		for i := range items {
			items[i].OrderID = order.ID
			err := tx.QueryRow(ctx, insertItem,
				order.ID, items[i].MenuItemID, items[i].Quantity, items[i].Price.String(),
			).Scan(&items[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "order_number") {
			return domainErrors.ErrOrderNumberTaken
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) ListPage(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]model.Order, int64, error) {
	b := &condBuilder{}
	if status != nil {
		b.add("status = $%d", string(*status))
	}

	// The count twin shares the predicates but not ordering or pagination.
	countQuery := `SELECT COUNT(*) FROM orders` + b.clause()
	countArgs := append([]any(nil), b.arguments()...)

	listQuery := `SELECT ` + orderColumns + ` FROM orders` + b.clause() +
		` ORDER BY created_at DESC` + b.page(limit, offset)

	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.pool.Query(ctx, listQuery, b.arguments()...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ItemsByOrder resolves line items against current catalog metadata. The join
// is LEFT so lines referencing a deleted menu item keep showing up with their
// frozen price and empty display fields.
func (r *orderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	const query = `SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price::text,
                          COALESCE(mi.name, ''), COALESCE(mi.category, ''), COALESCE(mi.image_url, '')
                   FROM order_items oi
                   LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
                   WHERE oi.order_id = $1
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItemDetail
	for rows.Next() {
		var (
			d        model.OrderItemDetail
			price    string
			category string
		)
		if err := rows.Scan(&d.ID, &d.OrderID, &d.MenuItemID, &d.Quantity, &price,
			&d.MenuItemName, &category, &d.ImageURL); err != nil {
			return nil, err
		}
		d.Category = model.MenuCategory(category)
		if d.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	tag, err := r.storage.pool.Exec(ctx,
		`UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
