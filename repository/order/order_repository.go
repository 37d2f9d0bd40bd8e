package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemLine) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, payment constant.PaymentStatus) error
	// GetOrderDetailTx locks the order row, nil is returned when the order does not exist.
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery     = "INSERT INTO orders (user_id, status, payment_status, total_amount, shipping_state, expires_at, created_at) VALUES (?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())"
	insertOrderItemQuery = "INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)"
	updateOrderStatus    = "UPDATE orders SET status = ?, payment_status = ? WHERE id = ?"
	getOrderDetailQuery  = "SELECT id, user_id, status, payment_status FROM orders WHERE id = ? FOR UPDATE"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, req.UserID, req.Status, req.PaymentStatus, req.TotalAmount, req.ShippingState, req.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemLine) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, payment constant.PaymentStatus) error {
	_, err := tx.ExecContext(ctx, updateOrderStatus, status, payment, orderID)
	return err
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := tx.QueryRowxContext(ctx, getOrderDetailQuery, orderID).StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
