package model

import "database/sql"

// Group 联系人分组
type Group struct {
	ID    int64          `gorm:"column:_id;primaryKey;autoIncrement"`
	Title sql.NullString `gorm:"column:title;type:varchar(255);comment:分组名称"`
}

func (Group) TableName() string {
	return "groups"
}
