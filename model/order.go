package model

import (
	"time"

	"github.com/decomizer/storefront/constant"
)

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingState string             `json:"shipping_state" validate:"required"`
}

type OrderResponse struct {
	OrderID     uint64    `json:"orderId"`
	TotalAmount float64   `json:"totalAmount"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// OrderItemLine is an order item priced at order time.
type OrderItemLine struct {
	ProductID uint64
	Quantity  int
	UnitPrice float64
}

type InsertOrderTxItem struct {
	UserID        uint64
	Status        constant.OrderStatus
	PaymentStatus constant.PaymentStatus
	TotalAmount   float64
	ShippingState string
	ExpiresAt     time.Time
}

type OrderDetail struct {
	ID            uint64                 `db:"id"`
	UserID        uint64                 `db:"user_id"`
	Status        constant.OrderStatus   `db:"status"`
	PaymentStatus constant.PaymentStatus `db:"payment_status"`
}

type ReserveRequest struct {
	OrderID   uint64
	ProductID uint64
	Quantity  int
}

type Reservation struct {
	ID        uint64 `db:"id"`
	ProductID uint64 `db:"product_id"`
	Quantity  int64  `db:"quantity"`
}

type StockInfo struct {
	ProductID uint64  `db:"id"`
	Available int64   `db:"available"`
	Price     float64 `db:"price"`
}
