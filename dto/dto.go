package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lulu77Donc/reggie-take-out/entity"
)

// DishDto is a dish with its flavors and category name.
type DishDto struct {
	entity.Dish
	Flavors      []entity.DishFlavor `json:"flavors"`
	CategoryName string              `json:"categoryName"`
}

// SetmealDto is a setmeal with its dish links and category name.
type SetmealDto struct {
	entity.Setmeal
	SetmealDishes []entity.SetmealDish `json:"setmealDishes"`
	CategoryName  string               `json:"categoryName"`
}

// DishUpdate is the PUT /dish body. Nil fields keep their stored value.
// A missing flavors list leaves flavors alone; an empty one clears them.
type DishUpdate struct {
	ID          int64               `json:"id" binding:"required"`
	Name        *string             `json:"name"`
	CategoryID  *int64              `json:"categoryId"`
	Price       *decimal.Decimal    `json:"price"`
	Code        *string             `json:"code"`
	Image       *string             `json:"image"`
	Description *string             `json:"description"`
	Status      *int                `json:"status"`
	Sort        *int                `json:"sort"`
	Flavors     []entity.DishFlavor `json:"flavors"`
}

// SetmealUpdate is the PUT /setmeal body, with the same nil rules as DishUpdate.
type SetmealUpdate struct {
	ID            int64                `json:"id" binding:"required"`
	Name          *string              `json:"name"`
	CategoryID    *int64               `json:"categoryId"`
	Price         *decimal.Decimal     `json:"price"`
	Status        *int                 `json:"status"`
	Code          *string              `json:"code"`
	Description   *string              `json:"description"`
	Image         *string              `json:"image"`
	SetmealDishes []entity.SetmealDish `json:"setmealDishes"`
}

// OrderDto is an order header with its detail lines.
type OrderDto struct {
	entity.Order
	OrderDetails []entity.OrderDetail `json:"orderDetails"`
}

// Page is a single page of results.
type Page[T any] struct {
	Records  []T   `json:"records"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

func NewPage[T any](records []T, total int64, page, size int) Page[T] {
	if records == nil {
		records = []T{}
	}
	return Page[T]{Records: records, Total: total, Page: page, PageSize: size}
}

// PageQuery binds the common page parameters.
type PageQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Name     string `form:"name"`
}

// OrderPageQuery binds the admin order page filters.
type OrderPageQuery struct {
	PageQuery
	Number    string    `form:"number"`
	BeginTime time.Time `form:"beginTime" time_format:"2006-01-02 15:04:05"`
	EndTime   time.Time `form:"endTime" time_format:"2006-01-02 15:04:05"`
	Status    int       `form:"status"`
}

// SubmitOrder is the payload of POST /order/submit.
type SubmitOrder struct {
	AddressBookID int64  `json:"addressBookId" binding:"required"`
	PayMethod     int    `json:"payMethod"`
	Remark        string `json:"remark"`
}

// LoginRequest is the employee login body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLoginRequest is the customer code login body.
type UserLoginRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// LoginResult is returned by both login flows.
type LoginResult struct {
	Token    string           `json:"token"`
	Employee *entity.Employee `json:"employee,omitempty"`
	User     *entity.User     `json:"user,omitempty"`
}

// CartItem is the payload of add/sub on the shopping cart.
type CartItem struct {
	DishID     *int64 `json:"dishId"`
	SetmealID  *int64 `json:"setmealId"`
	DishFlavor string `json:"dishFlavor"`
}

// OrderStatusUpdate is the admin status change body.
type OrderStatusUpdate struct {
	ID     int64 `json:"id,string" binding:"required"`
	Status int   `json:"status" binding:"required"`
}

// EmployeeUpdate is a partial employee edit; nil fields are left alone.
type EmployeeUpdate struct {
	ID       int64   `json:"id" binding:"required"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
	Sex      *string `json:"sex"`
	IDNumber *string `json:"idNumber"`
	Status   *int    `json:"status"`
}
