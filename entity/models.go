package entity

// All lists every table for AutoMigrate.
func All() []any {
	return []any{
		&Category{}, &Dish{}, &DishFlavor{}, &Setmeal{}, &SetmealDish{},
		&Employee{}, &User{}, &AddressBook{}, &ShoppingCart{},
		&Order{}, &OrderDetail{},
	}
}
