package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/events"
	"github.com/Lulu77Donc/reggie-take-out/pkg/testdb"
)

type capturePublisher struct {
	mu  sync.Mutex
	got []events.OrderEvent
}

func (p *capturePublisher) Publish(_ context.Context, ev events.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, ev)
	return nil
}

// stalledPublisher never finishes on its own, like a socket nobody reads.
type stalledPublisher struct{}

func (stalledPublisher) Publish(ctx context.Context, _ events.OrderEvent) error {
	<-ctx.Done()
	return ctx.Err()
}

type orderFixture struct {
	db      *gorm.DB
	svc     *OrderService
	pub     *capturePublisher
	user    *entity.User
	addr    *entity.AddressBook
	dish    *entity.Dish
	setmeal *entity.Setmeal
}

func newOrderFixture(t *testing.T) *orderFixture {
	db := testdb.New(t)
	pub := &capturePublisher{}
	svc := NewOrderService(db, &seqIDs{}, events.NewNotifier(pub))
	svc.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	f := &orderFixture{db: db, svc: svc, pub: pub}
	f.user = &entity.User{Name: "Li", Phone: "13800000000", Status: 1}
	mustCreate(t, db, f.user)
	f.addr = &entity.AddressBook{
		UserID: f.user.ID, Consignee: "Li", Phone: "13800000000",
		ProvinceName: "Zhejiang", CityName: "", DistrictName: "Xihu", Detail: "Road 1",
	}
	mustCreate(t, db, f.addr)
	cat := seedCategory(t, db, entity.CategoryTypeDish, "Hot")
	f.dish = seedDish(t, db, cat.ID, "A", "10.00", entity.StatusOn)
	f.setmeal = seedSetmeal(t, db, cat.ID, "B", "25.50", entity.StatusOn)
	return f
}

// published waits for background deliveries and returns what was captured.
func (f *orderFixture) published() []events.OrderEvent {
	f.svc.Notifier.Wait()
	f.pub.mu.Lock()
	defer f.pub.mu.Unlock()
	return append([]events.OrderEvent(nil), f.pub.got...)
}

func (f *orderFixture) addCart(t *testing.T) {
	mustCreate(t, f.db,
		&entity.ShoppingCart{UserID: f.user.ID, Name: "A", DishID: &f.dish.ID, DishFlavor: "hot", Number: 2, Amount: money("10.00")},
		&entity.ShoppingCart{UserID: f.user.ID, Name: "B", SetmealID: &f.setmeal.ID, Number: 1, Amount: money("25.50")},
	)
}

func TestSubmit_ComputesTotalAndConsumesCart(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	ctx := userCtx(f.user.ID)

	order, err := f.svc.Submit(ctx, dto.SubmitOrder{AddressBookID: f.addr.ID, Remark: "no onion"})
	require.NoError(t, err)

	assert.True(t, order.Amount.Equal(money("45.50")), order.Amount.String())
	assert.Equal(t, entity.OrderToBeConfirmed, order.Status)
	assert.Equal(t, "1000001", order.Number)
	assert.Equal(t, "ZhejiangXihuRoad 1", order.Address)
	assert.Equal(t, "Li", order.UserName)
	assert.Equal(t, order.OrderTime, order.CheckoutTime)

	assert.Equal(t, int64(1), count[entity.Order](t, f.db, ""))
	assert.Equal(t, int64(2), count[entity.OrderDetail](t, f.db, "order_id = ?", order.ID))
	assert.Zero(t, count[entity.ShoppingCart](t, f.db, "user_id = ?", f.user.ID))

	var stored entity.Order
	require.NoError(t, f.db.First(&stored, order.ID).Error)
	var details []entity.OrderDetail
	require.NoError(t, f.db.Where("order_id = ?", order.ID).Find(&details).Error)
	sum := money("0")
	for _, d := range details {
		assert.True(t, (d.DishID == nil) != (d.SetmealID == nil))
		sum = sum.Add(d.Amount.Mul(decimal.NewFromInt(int64(d.Number))))
	}
	assert.True(t, stored.Amount.Equal(sum))

	got := f.published()
	require.Len(t, got, 1)
	assert.Equal(t, order.Number, got[0].Number)
	assert.Equal(t, events.TypeOrderSubmitted, got[0].Type)
}

func TestSubmit_ReturnsWithoutWaitingForNotifications(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	f.svc.Notifier = events.NewNotifier(stalledPublisher{}, f.pub)

	start := time.Now()
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)

	require.Eventually(t, func() bool {
		f.pub.mu.Lock()
		defer f.pub.mu.Unlock()
		return len(f.pub.got) == 1 && f.pub.got[0].Number == order.Number
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubmit_EmptyCart(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})

	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.True(t, IsBusiness(err))
	assert.Equal(t, "cart is empty, cannot submit order", err.Error())
	assert.Zero(t, count[entity.Order](t, f.db, ""))
	assert.Empty(t, f.published())
}

func TestSubmit_UnknownAddress(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	_, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: 9999})

	assert.ErrorIs(t, err, ErrInvalidUser)
	assert.Zero(t, count[entity.Order](t, f.db, ""))
	assert.Zero(t, count[entity.OrderDetail](t, f.db, ""))
	assert.Equal(t, int64(2), count[entity.ShoppingCart](t, f.db, ""))
}

func TestSubmit_AddressOfAnotherUser(t *testing.T) {
	f := newOrderFixture(t)
	other := &entity.User{Phone: "139", Status: 1}
	mustCreate(t, f.db, other)
	mustCreate(t, f.db, &entity.ShoppingCart{UserID: other.ID, SetmealID: &f.setmeal.ID, Number: 1, Amount: money("1")})

	_, err := f.svc.Submit(userCtx(other.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestSubmit_DetailFailureRollsBack(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	testdb.FailOn(t, f.db, "order_detail", errors.New("disk full"))

	_, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.Error(t, err)
	assert.False(t, IsBusiness(err))
	assert.Contains(t, err.Error(), "disk full")

	assert.Zero(t, count[entity.Order](t, f.db, ""))
	assert.Equal(t, int64(2), count[entity.ShoppingCart](t, f.db, "user_id = ?", f.user.ID))
	assert.Empty(t, f.published())
}

func TestSubmit_CartClearFailureRollsBack(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	testdb.FailOn(t, f.db, "shopping_cart", errors.New("locked"))

	_, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.Error(t, err)
	assert.Zero(t, count[entity.Order](t, f.db, ""))
	assert.Zero(t, count[entity.OrderDetail](t, f.db, ""))
}

func TestDetailsFromCart_Total(t *testing.T) {
	dish, setmeal := int64(1), int64(2)
	details, total := detailsFromCart(7, []entity.ShoppingCart{
		{DishID: &dish, Number: 3, Amount: money("0.10")},
		{SetmealID: &setmeal, Number: 1, Amount: money("0.20")},
	})
	require.Len(t, details, 2)
	assert.Equal(t, int64(7), details[1].OrderID)
	assert.True(t, total.Equal(money("0.50")), total.String())
}

func TestOrder_UserPageAndAgain(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	ctx := userCtx(f.user.ID)
	order, err := f.svc.Submit(ctx, dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)

	page, err := f.svc.UserPage(ctx, dto.PageQuery{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Records, 1)
	assert.Len(t, page.Records[0].OrderDetails, 2)

	other, err := f.svc.UserPage(userCtx(f.user.ID+100), dto.PageQuery{})
	require.NoError(t, err)
	assert.Zero(t, other.Total)

	require.NoError(t, f.svc.Again(ctx, order.ID))
	assert.Equal(t, int64(2), count[entity.ShoppingCart](t, f.db, "user_id = ?", f.user.ID))

	err = f.svc.Again(userCtx(f.user.ID+100), order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrder_AdminPageFilters(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)

	ctx := employeeCtx(1)
	page, err := f.svc.AdminPage(ctx, dto.OrderPageQuery{Number: order.Number[2:]})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = f.svc.AdminPage(ctx, dto.OrderPageQuery{Number: "nope"})
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	page, err = f.svc.AdminPage(ctx, dto.OrderPageQuery{BeginTime: order.OrderTime.Add(time.Hour)})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestOrder_ChangeStatus(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)
	ctx := employeeCtx(1)

	assert.ErrorIs(t, f.svc.ChangeStatus(ctx, order.ID, entity.OrderDelivering), ErrInvalidStatus)
	require.NoError(t, f.svc.ChangeStatus(ctx, order.ID, entity.OrderConfirmed))
	require.NoError(t, f.svc.ChangeStatus(ctx, order.ID, entity.OrderDelivering))
	require.NoError(t, f.svc.ChangeStatus(ctx, order.ID, entity.OrderCompleted))
	assert.ErrorIs(t, f.svc.ChangeStatus(ctx, order.ID, entity.OrderCancelled), ErrInvalidStatus)
	assert.ErrorIs(t, f.svc.ChangeStatus(ctx, order.ID, 42), ErrInvalidStatus)
	assert.ErrorIs(t, f.svc.ChangeStatus(ctx, 1, entity.OrderConfirmed), ErrNotFound)

	got, err := f.svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, got.Status)
}

func TestOrder_CancelOwnOnly(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Cancel(userCtx(f.user.ID+1), order.ID), ErrNotFound)
	require.NoError(t, f.svc.Cancel(userCtx(f.user.ID), order.ID))
}

func TestOrder_QRCode(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)

	png, err := f.svc.QRCode(employeeCtx(1), order.ID, 0)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestOrder_QRCodeOwnOnly(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)
	order, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	require.NoError(t, err)

	_, err = f.svc.QRCode(userCtx(f.user.ID+1), order.ID, 128)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.QRCode(userCtx(f.user.ID), order.ID, 128)
	assert.NoError(t, err)
}

func TestSubmit_CartChangedMidCheckout(t *testing.T) {
	f := newOrderFixture(t)
	f.addCart(t)

	// another checkout takes line "B" right before this one consumes the cart
	var fired atomic.Bool
	require.NoError(t, f.db.Callback().Delete().Before("gorm:delete").Register("test:steal_line", func(tx *gorm.DB) {
		if tx.Statement.Table == "shopping_cart" && fired.CompareAndSwap(false, true) {
			_ = tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM shopping_cart WHERE name = ?", "B").Error
		}
	}))

	_, err := f.svc.Submit(userCtx(f.user.ID), dto.SubmitOrder{AddressBookID: f.addr.ID})
	assert.ErrorIs(t, err, ErrCartChanged)
	assert.True(t, IsBusiness(err))
	assert.Zero(t, count[entity.Order](t, f.db, ""))
	assert.Zero(t, count[entity.OrderDetail](t, f.db, ""))
	assert.Equal(t, int64(2), count[entity.ShoppingCart](t, f.db, "user_id = ?", f.user.ID))
	assert.Empty(t, f.published())
}
