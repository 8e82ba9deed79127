package services

import "errors"

// BusinessError marks a failure the caller caused; controllers map it to 4xx.
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string { return e.Err.Error() }
func (e *BusinessError) Unwrap() error { return e.Err }

func business(err error) error { return &BusinessError{Err: err} }

var (
	ErrCartEmpty           = errors.New("cart is empty, cannot submit order")
	ErrInvalidUser         = errors.New("invalid user information, cannot submit order")
	ErrCategoryHasDishes   = errors.New("category is linked to dishes and cannot be deleted")
	ErrCategoryHasSetmeals = errors.New("category is linked to setmeals and cannot be deleted")
	ErrLoginFailed         = errors.New("login failed")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrDishOnSale          = errors.New("dish is on sale and cannot be deleted")
	ErrSetmealOnSale       = errors.New("setmeal is on sale and cannot be deleted")

	ErrNotFound        = errors.New("not found")
	ErrInvalidCartItem = errors.New("exactly one of dish or setmeal is required")
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrInvalidStatus   = errors.New("order cannot move to that status")
	ErrDuplicateName   = errors.New("name already exists")
)

// IsBusiness reports whether err carries a business failure.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// ErrCartChanged is returned when a concurrent request consumed or removed cart lines mid-submit.
var ErrCartChanged = errors.New("cart changed during checkout, please submit again")
