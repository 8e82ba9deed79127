package entity

import "github.com/shopspring/decimal"

type Setmeal struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	CategoryID  int64           `gorm:"index;not null" json:"categoryId"`
	Name        string          `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Status      int             `gorm:"not null" json:"status"`
	Code        string          `gorm:"size:32" json:"code"`
	Description string          `gorm:"size:512" json:"description"`
	Image       string          `gorm:"size:255" json:"image"`
	AuditFields
}

func (Setmeal) TableName() string { return "setmeal" }
