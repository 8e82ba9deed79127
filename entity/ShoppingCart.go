package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingCart is one cart line. Exactly one of DishID / SetmealID is set.
type ShoppingCart struct {
	ID         int64           `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:50" json:"name"`
	Image      string          `gorm:"size:100" json:"image"`
	UserID     int64           `gorm:"index;not null" json:"userId"`
	DishID     *int64          `json:"dishId"`
	SetmealID  *int64          `json:"setmealId"`
	DishFlavor string          `gorm:"size:50" json:"dishFlavor"`
	Number     int             `gorm:"not null;default:1" json:"number"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreateTime time.Time       `json:"createTime"`
}

func (ShoppingCart) TableName() string { return "shopping_cart" }

// Subtotal is Amount × Number.
func (c *ShoppingCart) Subtotal() decimal.Decimal {
	return c.Amount.Mul(decimal.NewFromInt(int64(c.Number)))
}
