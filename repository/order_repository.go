package repository

import (
	"context"
	"time"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	Repository[entity.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{NewRepository[entity.Order](db)}
}

func (r *OrderRepository) Tx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{r.Repository.Tx(tx)}
}

// OrderFilter holds the admin page filters; zero values are ignored.
type OrderFilter struct {
	Number    string
	UserID    int64
	Status    int
	BeginTime time.Time
	EndTime   time.Time
}

func (f OrderFilter) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.Number != "" {
			db = db.Where("number LIKE ?", "%"+f.Number+"%")
		}
		if f.UserID != 0 {
			db = db.Where("user_id = ?", f.UserID)
		}
		if f.Status != 0 {
			db = db.Where("status = ?", f.Status)
		}
		if !f.BeginTime.IsZero() {
			db = db.Where("order_time >= ?", f.BeginTime)
		}
		if !f.EndTime.IsZero() {
			db = db.Where("order_time <= ?", f.EndTime)
		}
		return db.Order("order_time DESC")
	}
}

// UpdateStatusFromTo moves an order between statuses and reports whether it matched.
func (r *OrderRepository) UpdateStatusFromTo(ctx context.Context, orderID int64, from []int, to int) (bool, error) {
	res := r.conn(ctx).Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type OrderDetailRepository struct {
	Repository[entity.OrderDetail]
}

func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{NewRepository[entity.OrderDetail](db)}
}

func (r *OrderDetailRepository) Tx(tx *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{r.Repository.Tx(tx)}
}

func (r *OrderDetailRepository) ListByOrder(ctx context.Context, orderID int64) ([]entity.OrderDetail, error) {
	return r.List(ctx, Where("order_id = ?", orderID), OrderBy("id ASC"))
}

func (r *OrderDetailRepository) ListByOrders(ctx context.Context, orderIDs []int64) (map[int64][]entity.OrderDetail, error) {
	out := make(map[int64][]entity.OrderDetail, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	rows, err := r.List(ctx, Where("order_id IN ?", orderIDs), OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	for _, d := range rows {
		out[d.OrderID] = append(out[d.OrderID], d)
	}
	return out, nil
}
