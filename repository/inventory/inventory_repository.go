package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decomizer/storefront/model"
	"github.com/jmoiron/sqlx"
)

// InventoryRepository tracks product stock reserved by pending orders.
type InventoryRepository interface {
	// GetStockForUpdateTx locks the product row, nil is returned for unknown or inactive products.
	GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.StockInfo, error)
	ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error
	CommitReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
	ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	getStockForUpdateQuery   = `SELECT id, (stock - reserved) AS available, price FROM products WHERE id = ? AND is_active = TRUE FOR UPDATE`
	reserveStockQuery        = `UPDATE products SET reserved = reserved + ? WHERE id = ?`
	insertReservationQuery   = `INSERT INTO stock_reservations (order_id, product_id, quantity) VALUES (?, ?, ?)`
	getReservationsQuery     = `SELECT id, product_id, quantity FROM stock_reservations WHERE order_id = ? FOR UPDATE`
	commitReservedStockQuery = `UPDATE products SET stock = stock - ?, reserved = reserved - ? WHERE id = ?`
	releaseStockQuery        = `UPDATE products SET reserved = reserved - ? WHERE id = ?`
	deleteReservationQuery   = `DELETE FROM stock_reservations WHERE id = ?`
)

func (r *SQL) GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.StockInfo, error) {
	var info model.StockInfo
	if err := tx.GetContext(ctx, &info, getStockForUpdateQuery, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (r *SQL) ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error {
	if _, err := tx.ExecContext(ctx, reserveStockQuery, req.Quantity, req.ProductID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, insertReservationQuery, req.OrderID, req.ProductID, req.Quantity)
	return err
}

func (r *SQL) getReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Reservation, error) {
	res := make([]model.Reservation, 0)
	if err := tx.SelectContext(ctx, &res, getReservationsQuery, orderID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) CommitReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	reservations, err := r.getReservationsTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		// stock leaves the shelf, reservation is consumed
		if _, err := tx.ExecContext(ctx, commitReservedStockQuery, rr.Quantity, rr.Quantity, rr.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteReservationQuery, rr.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	reservations, err := r.getReservationsTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		if _, err := tx.ExecContext(ctx, releaseStockQuery, rr.Quantity, rr.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteReservationQuery, rr.ID); err != nil {
			return err
		}
	}
	return nil
}
