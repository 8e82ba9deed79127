package entity

import "github.com/shopspring/decimal"

const (
	StatusOff = 0
	StatusOn  = 1
)

type Dish struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:64;uniqueIndex;not null" json:"name"`
	CategoryID  int64           `gorm:"index;not null" json:"categoryId"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Code        string          `gorm:"size:64" json:"code"`
	Image       string          `gorm:"size:200" json:"image"`
	Description string          `gorm:"size:400" json:"description"`
	Status      int             `gorm:"not null" json:"status"`
	Sort        int             `gorm:"not null;default:0" json:"sort"`
	AuditFields
}

func (Dish) TableName() string { return "dish" }
