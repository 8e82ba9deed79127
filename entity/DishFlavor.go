package entity

// DishFlavor.Value holds the selectable values as a JSON array string,
// e.g. ["mild","hot"].
type DishFlavor struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	DishID int64  `gorm:"index;not null" json:"dishId"`
	Name   string `gorm:"size:64" json:"name"`
	Value  string `gorm:"size:500" json:"value"`
	AuditFields
}

func (DishFlavor) TableName() string { return "dish_flavor" }
