package entity

import "github.com/shopspring/decimal"

// SetmealDish links a setmeal to a dish; Name and Price are copied at link time.
type SetmealDish struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	SetmealID int64           `gorm:"index;not null" json:"setmealId"`
	DishID    int64           `gorm:"not null" json:"dishId"`
	Name      string          `gorm:"size:32" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Copies    int             `gorm:"not null;default:1" json:"copies"`
	Sort      int             `gorm:"not null;default:0" json:"sort"`
	AuditFields
}

func (SetmealDish) TableName() string { return "setmeal_dish" }
