package services

import (
	"context"

	"github.com/skip2/go-qrcode"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// allowedFrom lists, per target status, the statuses an order may leave to reach it.
var allowedFrom = map[int][]int{
	entity.OrderToBeConfirmed: {entity.OrderPendingPayment},
	entity.OrderConfirmed:     {entity.OrderToBeConfirmed},
	entity.OrderDelivering:    {entity.OrderConfirmed},
	entity.OrderCompleted:     {entity.OrderDelivering},
	entity.OrderCancelled:     {entity.OrderPendingPayment, entity.OrderToBeConfirmed, entity.OrderConfirmed},
}

// ChangeStatus moves an order along the status graph. A move from the wrong
// state, or one that lost a race, is rejected with ErrInvalidStatus.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID int64, to int) error {
	from, ok := allowedFrom[to]
	if !ok {
		return business(ErrInvalidStatus)
	}
	if _, err := s.Orders.GetByID(ctx, orderID); err != nil {
		return storeErr(err, "load order")
	}
	moved, err := s.Orders.UpdateStatusFromTo(ctx, orderID, from, to)
	if err != nil {
		return storeErr(err, "update order status")
	}
	if !moved {
		return business(ErrInvalidStatus)
	}
	logger.S().Infow("order status changed", "order", orderID, "to", to, "by", utils.ActorID(ctx))
	return nil
}

// Cancel lets a customer cancel one of their own orders before it is delivered.
func (s *OrderService) Cancel(ctx context.Context, orderID int64) error {
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return storeErr(err, "load order")
	}
	if o.UserID != utils.ActorID(ctx) {
		return business(ErrNotFound)
	}
	return s.ChangeStatus(ctx, orderID, entity.OrderCancelled)
}

// QRCode renders the order number as a PNG for pickup scanning. Customers
// only get codes for their own orders.
func (s *OrderService) QRCode(ctx context.Context, orderID int64, size int) ([]byte, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if size <= 0 || size > 1024 {
		size = 256
	}
	png, err := qrcode.Encode(o.Number, qrcode.Medium, size)
	if err != nil {
		return nil, storeErr(err, "encode qr code")
	}
	return png, nil
}
