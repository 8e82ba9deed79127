package entity

import "github.com/shopspring/decimal"

// OrderDetail is an immutable line snapshot. Exactly one of DishID / SetmealID is set.
type OrderDetail struct {
	ID         int64           `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:50" json:"name"`
	Image      string          `gorm:"size:100" json:"image"`
	OrderID    int64           `gorm:"index;not null" json:"orderId,string"`
	DishID     *int64          `json:"dishId"`
	SetmealID  *int64          `json:"setmealId"`
	DishFlavor string          `gorm:"size:50" json:"dishFlavor"`
	Number     int             `gorm:"not null;default:1" json:"number"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

func (OrderDetail) TableName() string { return "order_detail" }
