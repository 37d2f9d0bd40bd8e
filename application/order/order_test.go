package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apporder "github.com/decomizer/storefront/application/order"
	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/constant"
	inventorymocks "github.com/decomizer/storefront/mocks/repository/inventory"
	ordermocks "github.com/decomizer/storefront/mocks/repository/order"
	txmocks "github.com/decomizer/storefront/mocks/repository/tx"
	publishermocks "github.com/decomizer/storefront/mocks/thirdparty/rabbitmq"
	"github.com/decomizer/storefront/model"
	"github.com/decomizer/storefront/thirdparty/rabbitmq"
	cerr "github.com/decomizer/storefront/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo        *txmocks.TxRepository
	orderRepo     *ordermocks.OrderRepository
	inventoryRepo *inventorymocks.InventoryRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		orderRepo:     ordermocks.NewOrderRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
	}
}

func testConfig() *config.Config {
	return &config.Config{Order: config.OrderConfig{OrderExpiration: 30 * time.Minute}}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name      string
		req       *model.OrderRequest
		mockCall  func(f fields)
		wantTotal float64
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: repeated products are merged",
			req: &model.OrderRequest{
				Items: []model.OrderItemRequest{
					{ProductID: 1, Quantity: 2},
					{ProductID: 2, Quantity: 1},
					{ProductID: 1, Quantity: 1},
				},
				ShippingState: "Gujarat",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.StockInfo{ProductID: 1, Available: 5, Price: 100}, nil).Once()
				f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.StockInfo{ProductID: 2, Available: 1, Price: 50}, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(r *model.InsertOrderTxItem) bool {
					return r.UserID == 10 && r.TotalAmount == 350 && r.Status == constant.OrderStatusPending &&
						r.PaymentStatus == constant.PaymentStatusPending && r.ShippingState == "Gujarat"
				})).Return(uint64(99), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(99), []model.OrderItemLine{
					{ProductID: 1, Quantity: 3, UnitPrice: 100},
					{ProductID: 2, Quantity: 1, UnitPrice: 50},
				}).Return(nil).Once()
				f.inventoryRepo.On("ReserveStockTx", mock.Anything, tx, &model.ReserveRequest{OrderID: 99, ProductID: 1, Quantity: 3}).Return(nil).Once()
				f.inventoryRepo.On("ReserveStockTx", mock.Anything, tx, &model.ReserveRequest{OrderID: 99, ProductID: 2, Quantity: 1}).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantTotal: 350,
		},
		{
			name:    "error: empty items",
			req:     &model.OrderRequest{ShippingState: "Gujarat"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: zero quantity",
			req: &model.OrderRequest{
				Items:         []model.OrderItemRequest{{ProductID: 1, Quantity: 0}},
				ShippingState: "Gujarat",
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: insufficient stock",
			req: &model.OrderRequest{
				Items:         []model.OrderItemRequest{{ProductID: 1, Quantity: 6}},
				ShippingState: "Gujarat",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.StockInfo{ProductID: 1, Available: 5, Price: 100}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: unknown product",
			req: &model.OrderRequest{
				Items:         []model.OrderItemRequest{{ProductID: 404, Quantity: 1}},
				ShippingState: "Gujarat",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: begin tx fails",
			req: &model.OrderRequest{
				Items:         []model.OrderItemRequest{{ProductID: 1, Quantity: 1}},
				ShippingState: "Gujarat",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: insert order fails",
			req: &model.OrderRequest{
				Items:         []model.OrderItemRequest{{ProductID: 1, Quantity: 1}},
				ShippingState: "Gujarat",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.StockInfo{ProductID: 1, Available: 5, Price: 100}, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(testConfig(), f.txRepo, f.orderRepo, f.inventoryRepo, nil)

			got, err := app.CreateOrder(context.Background(), 10, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cerr.Is(err, tt.errCode) {
					t.Fatalf("CreateOrder() error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
				}
				return
			}
			if got.OrderID != 99 || got.TotalAmount != tt.wantTotal {
				t.Fatalf("CreateOrder() = %+v", got)
			}
		})
	}
}

func TestOrderApp_CreateOrder_PublishesExpiration(t *testing.T) {
	tx := &sqlx.Tx{}
	f := newFields(t)
	publisher := publishermocks.NewExpirationPublisher(t)

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.inventoryRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.StockInfo{ProductID: 1, Available: 5, Price: 100}, nil).Once()
	f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(5), nil).Once()
	f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(5), mock.Anything).Return(nil).Once()
	f.inventoryRepo.On("ReserveStockTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	// a failed publish does not fail the order
	publisher.On("PublishOrderExpiration", mock.Anything, mock.MatchedBy(func(m rabbitmq.OrderExpirationMessage) bool {
		return m.OrderID == 5 && m.UserID == 10 && !m.ExpiresAt.IsZero()
	})).Return(errors.New("broker down")).Once()

	app := apporder.NewOrderApp(testConfig(), f.txRepo, f.orderRepo, f.inventoryRepo, publisher)
	got, err := app.CreateOrder(context.Background(), 10, &model.OrderRequest{
		Items:         []model.OrderItemRequest{{ProductID: 1, Quantity: 1}},
		ShippingState: "Kerala",
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if got.OrderID != 5 {
		t.Fatalf("CreateOrder() order id = %d, want 5", got.OrderID)
	}
}

func TestOrderApp_PayOrder(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		userID   uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: pending order confirmed",
			userID: 10,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).Return(&model.OrderDetail{ID: 1, UserID: 10, Status: constant.OrderStatusPending}, nil).Once()
				f.inventoryRepo.On("CommitReservationsTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusConfirmed, constant.PaymentStatusCompleted).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:   "error: order of another user",
			userID: 11,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).Return(&model.OrderDetail{ID: 1, UserID: 10, Status: constant.OrderStatusPending}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: order already cancelled",
			userID: 10,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).Return(&model.OrderDetail{ID: 1, UserID: 10, Status: constant.OrderStatusCancelled}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app := apporder.NewOrderApp(testConfig(), f.txRepo, f.orderRepo, f.inventoryRepo, nil)

			err := app.PayOrder(context.Background(), tt.userID, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PayOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !cerr.Is(err, tt.errCode) {
				t.Fatalf("PayOrder() error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
			}
		})
	}
}

func TestOrderApp_CancelOrder(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reservations released",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(2)).Return(&model.OrderDetail{ID: 2, UserID: 10, Status: constant.OrderStatusPending}, nil).Once()
				f.inventoryRepo.On("ReleaseReservationsTx", mock.Anything, tx, uint64(2)).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(2), constant.OrderStatusCancelled, constant.PaymentStatusFailed).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: paid order is not cancelled",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(2)).Return(&model.OrderDetail{ID: 2, UserID: 10, Status: constant.OrderStatusConfirmed}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: order not found",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(2)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)
			app := apporder.NewOrderApp(testConfig(), f.txRepo, f.orderRepo, f.inventoryRepo, nil)

			err := app.CancelOrder(context.Background(), 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !cerr.Is(err, tt.errCode) {
				t.Fatalf("CancelOrder() error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
			}
		})
	}
}
