package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/events"
	"github.com/Lulu77Donc/reggie-take-out/repository"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

type OrderService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Details   *repository.OrderDetailRepository
	Carts     *repository.CartRepository
	Addresses *repository.AddressBookRepository
	Users     *repository.UserRepository

	IDs      utils.IDGenerator
	Notifier *events.Notifier
	Now      func() time.Time
}

func NewOrderService(db *gorm.DB, ids utils.IDGenerator, notifier *events.Notifier) *OrderService {
	return &OrderService{
		DB:        db,
		Orders:    repository.NewOrderRepository(db),
		Details:   repository.NewOrderDetailRepository(db),
		Carts:     repository.NewCartRepository(db),
		Addresses: repository.NewAddressBookRepository(db),
		Users:     repository.NewUserRepository(db),
		IDs:       ids,
		Notifier:  notifier,
		Now:       time.Now,
	}
}

// Submit turns the current customer's cart into an order.
//
// The cart and address are read before the transaction. Inside it the header
// and details are written and exactly the cart lines that were read are
// deleted; if another request removed any of them first, the transaction
// rolls back with ErrCartChanged.
func (s *OrderService) Submit(ctx context.Context, in dto.SubmitOrder) (*entity.Order, error) {
	userID := utils.ActorID(ctx)

	lines, err := s.Carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "load cart")
	}
	if len(lines) == 0 {
		return nil, business(ErrCartEmpty)
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err, "load user")
	}
	addr, err := s.Addresses.GetForUser(ctx, userID, in.AddressBookID)
	if err != nil {
		return nil, storeErr(err, "load address")
	}
	if user == nil || addr == nil {
		return nil, business(ErrInvalidUser)
	}

	orderID := s.IDs.NextID()
	details, amount := detailsFromCart(orderID, lines)
	now := s.Now()
	payMethod := in.PayMethod
	if payMethod == 0 {
		payMethod = 1
	}
	order := &entity.Order{
		ID:            orderID,
		Number:        strconv.FormatInt(orderID, 10),
		Status:        entity.OrderToBeConfirmed,
		UserID:        userID,
		AddressBookID: addr.ID,
		OrderTime:     now,
		CheckoutTime:  now,
		PayMethod:     payMethod,
		Amount:        amount,
		Remark:        in.Remark,
		Phone:         addr.Phone,
		Address:       addr.FullAddress(),
		UserName:      user.Name,
		Consignee:     addr.Consignee,
	}

	lineIDs := make([]int64, len(lines))
	for i, l := range lines {
		lineIDs[i] = l.ID
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.Tx(tx).Create(ctx, order); err != nil {
			return err
		}
		if err := s.Details.Tx(tx).CreateBatch(ctx, details); err != nil {
			return err
		}
		n, err := s.Carts.Tx(tx).ConsumeLines(ctx, userID, lineIDs)
		if err != nil {
			return err
		}
		if n != int64(len(lineIDs)) {
			return business(ErrCartChanged)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "submit order")
	}

	s.Notifier.OrderSubmitted(ctx, events.OrderEvent{
		OrderID:   order.ID,
		Number:    order.Number,
		UserID:    order.UserID,
		Amount:    order.Amount,
		Status:    order.Status,
		OrderTime: order.OrderTime,
	})
	return order, nil
}

// detailsFromCart maps cart lines to detail rows and sums amount × number.
func detailsFromCart(orderID int64, lines []entity.ShoppingCart) ([]entity.OrderDetail, decimal.Decimal) {
	details := make([]entity.OrderDetail, len(lines))
	total := decimal.Zero
	for i := range lines {
		l := &lines[i]
		details[i] = entity.OrderDetail{
			OrderID:    orderID,
			Name:       l.Name,
			Image:      l.Image,
			DishID:     l.DishID,
			SetmealID:  l.SetmealID,
			DishFlavor: l.DishFlavor,
			Number:     l.Number,
			Amount:     l.Amount,
		}
		total = total.Add(l.Subtotal())
	}
	return details, total
}

// UserPage lists the current customer's orders with their details, newest first.
func (s *OrderService) UserPage(ctx context.Context, q dto.PageQuery) (dto.Page[dto.OrderDto], error) {
	return s.page(ctx, q, repository.OrderFilter{UserID: utils.ActorID(ctx)})
}

// AdminPage lists all orders filtered by number, status and order time range.
func (s *OrderService) AdminPage(ctx context.Context, q dto.OrderPageQuery) (dto.Page[dto.OrderDto], error) {
	return s.page(ctx, q.PageQuery, repository.OrderFilter{
		Number:    q.Number,
		Status:    q.Status,
		BeginTime: q.BeginTime,
		EndTime:   q.EndTime,
	})
}

func (s *OrderService) page(ctx context.Context, q dto.PageQuery, f repository.OrderFilter) (dto.Page[dto.OrderDto], error) {
	rows, total, err := s.Orders.Page(ctx, q.Page, q.PageSize, f.Scope())
	if err != nil {
		return dto.Page[dto.OrderDto]{}, storeErr(err, "page orders")
	}
	ids := make([]int64, len(rows))
	for i, o := range rows {
		ids[i] = o.ID
	}
	details, err := s.Details.ListByOrders(ctx, ids)
	if err != nil {
		return dto.Page[dto.OrderDto]{}, storeErr(err, "load order details")
	}
	out := make([]dto.OrderDto, len(rows))
	for i, o := range rows {
		d := details[o.ID]
		if d == nil {
			d = []entity.OrderDetail{}
		}
		out[i] = dto.OrderDto{Order: o, OrderDetails: d}
	}
	return pageOf(out, total, q), nil
}

// Get returns one order with details. Customers only see their own orders.
func (s *OrderService) Get(ctx context.Context, id int64) (*dto.OrderDto, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "load order")
	}
	if ident, ok := utils.IdentityFrom(ctx); ok && ident.Role == utils.RoleUser && o.UserID != ident.ID {
		return nil, business(ErrNotFound)
	}
	details, err := s.Details.ListByOrder(ctx, id)
	if err != nil {
		return nil, storeErr(err, "load order details")
	}
	return &dto.OrderDto{Order: *o, OrderDetails: details}, nil
}

// Again copies the lines of one of the customer's past orders back into the cart.
func (s *OrderService) Again(ctx context.Context, orderID int64) error {
	userID := utils.ActorID(ctx)
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return storeErr(err, "load order")
	}
	if o.UserID != userID {
		return business(ErrNotFound)
	}
	details, err := s.Details.ListByOrder(ctx, orderID)
	if err != nil {
		return storeErr(err, "load order details")
	}
	now := s.Now()
	lines := make([]entity.ShoppingCart, len(details))
	for i, d := range details {
		lines[i] = entity.ShoppingCart{
			UserID:     userID,
			Name:       d.Name,
			Image:      d.Image,
			DishID:     d.DishID,
			SetmealID:  d.SetmealID,
			DishFlavor: d.DishFlavor,
			Number:     d.Number,
			Amount:     d.Amount,
			CreateTime: now,
		}
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		carts := s.Carts.Tx(tx)
		if err := carts.ClearByUser(ctx, userID); err != nil {
			return err
		}
		return carts.CreateBatch(ctx, lines)
	})
	return storeErr(err, "copy order to cart")
}
