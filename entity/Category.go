package entity

const (
	CategoryTypeDish    = 1
	CategoryTypeSetmeal = 2
)

type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Type int    `json:"type"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Sort int    `gorm:"not null;default:0" json:"sort"`
	AuditFields
}

func (Category) TableName() string { return "category" }
