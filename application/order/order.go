package order

import (
	"context"
	"time"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	inventoryrepo "github.com/decomizer/storefront/repository/inventory"
	orderrepo "github.com/decomizer/storefront/repository/order"
	txrepo "github.com/decomizer/storefront/repository/tx"
	"github.com/decomizer/storefront/thirdparty/rabbitmq"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error)
	PayOrder(ctx context.Context, userID, orderID uint64) error
	CancelOrder(ctx context.Context, orderID uint64) error
}

type orderAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	orderRepo     orderrepo.OrderRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     rabbitmq.ExpirationPublisher
}

// NewOrderApp wires the order flows, publisher may be nil when expiration
// messages are disabled.
func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, inventoryRepo inventoryrepo.InventoryRepository, publisher rabbitmq.ExpirationPublisher) OrderApp {
	return &orderAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, inventoryRepo: inventoryRepo, publisher: publisher}
}

// mergeItems sums quantities of repeated products, first occurrence order is kept.
func mergeItems(items []model.OrderItemRequest) []model.OrderItemRequest {
	idx := make(map[uint64]int, len(items))
	merged := make([]model.OrderItemRequest, 0, len(items))
	for _, it := range items {
		if i, ok := idx[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		idx[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	items := mergeItems(req.Items)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// lock and validate stock for each item
	lines := make([]model.OrderItemLine, 0, len(items))
	var total float64
	for _, item := range items {
		stock, err := s.inventoryRepo.GetStockForUpdateTx(ctx, tx, item.ProductID)
		if err != nil {
			logger.Error("[CreateOrder] get stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if stock == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if stock.Available < int64(item.Quantity) {
			logger.Info("[CreateOrder] insufficient stock", zap.Uint64("product_id", item.ProductID), zap.Int("need", item.Quantity), zap.Int64("available", stock.Available))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		lines = append(lines, model.OrderItemLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: stock.Price,
		})
		total += stock.Price * float64(item.Quantity)
	}

	expiresAt := time.Now().UTC().Add(s.config.Order.OrderExpiration)
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		UserID:        userID,
		Status:        constant.OrderStatusPending,
		PaymentStatus: constant.PaymentStatusPending,
		TotalAmount:   total,
		ShippingState: req.ShippingState,
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, lines); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for _, line := range lines {
		req := &model.ReserveRequest{
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if err := s.inventoryRepo.ReserveStockTx(ctx, tx, req); err != nil {
			logger.Error("[CreateOrder] reserve stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishOrderExpiration(ctx, msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	return &model.OrderResponse{
		OrderID:     orderID,
		TotalAmount: total,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *orderAppImpl) PayOrder(ctx context.Context, userID, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PayOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[PayOrder] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if orderDetail == nil || orderDetail.UserID != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if orderDetail.Status != constant.OrderStatusPending {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	// reserved units leave stock
	if err := s.inventoryRepo.CommitReservationsTx(ctx, tx, orderID); err != nil {
		logger.Error("[PayOrder] commit reservations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusConfirmed, constant.PaymentStatusCompleted); err != nil {
		logger.Error("[PayOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PayOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if orderDetail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if orderDetail.Status != constant.OrderStatusPending {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	// reserved units go back on sale
	if err := s.inventoryRepo.ReleaseReservationsTx(ctx, tx, orderID); err != nil {
		logger.Error("[CancelOrder] release reservations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCancelled, constant.PaymentStatusFailed); err != nil {
		logger.Error("[CancelOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	logger.Info("[CancelOrder] order cancelled", zap.Uint64("order_id", orderID))
	return nil
}
