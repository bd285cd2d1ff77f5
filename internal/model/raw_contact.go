package model

import "database/sql"

// RawContact 账号关联表
// 一个联系人可能由多个账号下的原始联系人合并而来
type RawContact struct {
	ID          int64          `gorm:"column:_id;primaryKey;autoIncrement"`
	ContactID   sql.NullInt64  `gorm:"column:contact_id;index;comment:聚合后的联系人ID"`
	AccountName sql.NullString `gorm:"column:account_name;type:varchar(255);comment:账号名"`
	AccountType sql.NullString `gorm:"column:account_type;type:varchar(255);comment:账号类型"`
}

func (RawContact) TableName() string {
	return "raw_contacts"
}
