package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, courier_id, customer_name, shipping_address, region_code,
		subtotal, shipping_cost, grand_total, payment_method, payment_status, status,
		payment_proof, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create persists the order and its line items. It relies on the caller's
// ambient transaction, so a failed item insert rolls back the order row too.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (user_id, courier_id, customer_name, shipping_address, region_code,
			subtotal, shipping_cost, grand_total, payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.CustomerID,
		orderEntity.CourierID,
		orderEntity.CustomerName,
		orderEntity.ShippingAddress,
		orderEntity.RegionCode,
		orderEntity.Subtotal,
		orderEntity.ShippingCost,
		orderEntity.GrandTotal,
		orderEntity.PaymentMethod.String(),
		orderEntity.PaymentStatus.String(),
		orderEntity.Status.String(),
	).Scan(scanOrderFields(&orderDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	created := ToDomain(&orderDB)
	created.Items = make([]entities.OrderItem, 0, len(orderEntity.Items))

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, product_id, quantity, price`

	for _, item := range orderEntity.Items {
		var itemDB OrderItemDB
		err := r.querier.QueryRow(ctx, itemQuery, created.ID, item.ProductID, item.Quantity, item.Price).
			Scan(&itemDB.ID, &itemDB.OrderID, &itemDB.ProductID, &itemDB.Quantity, &itemDB.Price)
		if err != nil {
			// product removed between the lookup and the insert
			if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
				return nil, order.ErrProductNotFound
			}
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
		created.Items = append(created.Items, ToItemDomain(&itemDB))
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate locks the order row for the rest of the ambient
// transaction. Concurrent transitions on the same order serialize on this
// lock instead of racing check-then-act.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanOrderFields(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderEntity := ToDomain(&orderDB)

	items, err := r.itemsByOrderID(ctx, orderEntity.ID)
	if err != nil {
		return nil, err
	}
	orderEntity.Items = items

	return orderEntity, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, order.ErrOrderNotFound
	}

	builder := qb.Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.PaymentStatus != nil {
		builder = builder.Set("payment_status", orderModify.PaymentStatus.String())
	}
	if orderModify.CourierID != nil {
		builder = builder.Set("courier_id", *orderModify.CourierID)
	}
	if orderModify.PaymentProof != nil {
		builder = builder.Set("payment_proof", *orderModify.PaymentProof)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": *orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanOrderFields(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderEntity := ToDomain(&orderDB)

	items, err := r.itemsByOrderID(ctx, orderEntity.ID)
	if err != nil {
		return nil, err
	}
	orderEntity.Items = items

	return orderEntity, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderListFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "user_id", "courier_id", "customer_name", "shipping_address", "region_code",
			"subtotal", "shipping_cost", "grand_total", "payment_method", "payment_status", "status",
			"payment_proof", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC", "id DESC")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.CustomerID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}

	switch filter.Type {
	case entities.OrderListActive:
		builder = builder.Where(sq.Eq{"status": []string{
			entities.OrderPending.String(),
			entities.OrderProcessing.String(),
			entities.OrderOnDelivery.String(),
		}})
	case entities.OrderListHistory:
		builder = builder.Where(sq.Eq{"status": []string{
			entities.OrderCompleted.String(),
			entities.OrderCancelled.String(),
		}})
	case entities.OrderListAll:
	}

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(scanOrderFields(&orderDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}

func (r *Repository) itemsByOrderID(ctx context.Context, orderID int64) ([]entities.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.OrderItem, 0, 4)
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(&itemDB.ID, &itemDB.OrderID, &itemDB.ProductID, &itemDB.Quantity, &itemDB.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items error: %w", err)
		}
		items = append(items, ToItemDomain(&itemDB))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}

	return items, nil
}

func scanOrderFields(o *OrderDB) []any {
	return []any{
		&o.ID,
		&o.CustomerID,
		&o.CourierID,
		&o.CustomerName,
		&o.ShippingAddress,
		&o.RegionCode,
		&o.Subtotal,
		&o.ShippingCost,
		&o.GrandTotal,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.Status,
		&o.PaymentProof,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
