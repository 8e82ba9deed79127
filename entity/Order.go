package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPendingPayment = 1
	OrderToBeConfirmed  = 2
	OrderConfirmed      = 3
	OrderDelivering     = 4
	OrderCompleted      = 5
	OrderCancelled      = 6
)

// Order is an order header. ID comes from the snowflake generator, not the store.
type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Number        string          `gorm:"size:50;index" json:"number"`
	Status        int             `gorm:"not null" json:"status"`
	UserID        int64           `gorm:"index;not null" json:"userId"`
	AddressBookID int64           `gorm:"not null" json:"addressBookId"`
	OrderTime     time.Time       `json:"orderTime"`
	CheckoutTime  time.Time       `json:"checkoutTime"`
	PayMethod     int             `gorm:"not null;default:1" json:"payMethod"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Remark        string          `gorm:"size:100" json:"remark"`
	Phone         string          `gorm:"size:255" json:"phone"`
	Address       string          `gorm:"size:255" json:"address"`
	UserName      string          `gorm:"size:255" json:"userName"`
	Consignee     string          `gorm:"size:255" json:"consignee"`
}

func (Order) TableName() string { return "orders" }
