package entity

type Employee struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:32;not null" json:"name"`
	Username string `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:64;not null" json:"-"`
	Phone    string `gorm:"size:11" json:"phone"`
	Sex      string `gorm:"size:2" json:"sex"`
	IDNumber string `gorm:"column:id_number;size:18" json:"idNumber"`
	Status   int    `gorm:"not null" json:"status"`
	AuditFields
}

func (Employee) TableName() string { return "employee" }
