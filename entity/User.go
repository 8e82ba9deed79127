package entity

// User is an ordering customer, identified by phone.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50" json:"name"`
	Phone    string `gorm:"size:100;uniqueIndex;not null" json:"phone"`
	Sex      string `gorm:"size:2" json:"sex"`
	IDNumber string `gorm:"column:id_number;size:18" json:"idNumber"`
	Avatar   string `gorm:"size:500" json:"avatar"`
	Status   int    `json:"status"`
}

func (User) TableName() string { return "user" }
