package entity

import "time"

// AuditFields is embedded by every row the back office writes.
// Only the repository layer sets these.
type AuditFields struct {
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
	CreateUser int64     `json:"createUser"`
	UpdateUser int64     `json:"updateUser"`
}

// Auditable is implemented by rows carrying AuditFields.
type Auditable interface {
	StampCreate(at time.Time, actor int64)
	StampUpdate(at time.Time, actor int64)
}

func (a *AuditFields) StampCreate(at time.Time, actor int64) {
	a.CreateTime, a.UpdateTime = at, at
	a.CreateUser, a.UpdateUser = actor, actor
}

func (a *AuditFields) StampUpdate(at time.Time, actor int64) {
	a.UpdateTime = at
	a.UpdateUser = actor
}
