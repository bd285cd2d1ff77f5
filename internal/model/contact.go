// Package model 定义联系人数据源的表结构
// 表结构与 Android 联系人 Provider 的导出一致，列名保持原样
package model

import "database/sql"

// Contact 联系人主表，每行一个联系人
// 对应数据库 contacts 表
type Contact struct {
	ID                   int64          `gorm:"column:_id;primaryKey;autoIncrement"`
	LastUpdatedTimestamp int64          `gorm:"column:contact_last_updated_timestamp;index;not null;default:0;comment:最后修改时间（毫秒）"`
	PhotoURI             sql.NullString `gorm:"column:photo_uri;type:varchar(512);comment:头像地址"`
	LookupKey            string         `gorm:"column:lookup;type:varchar(255);comment:稳定查找键"`
	DisplayName          sql.NullString `gorm:"column:display_name;type:varchar(255);comment:显示名称"`
	Starred              int8           `gorm:"column:starred;not null;default:0;comment:收藏，0.否，1.是"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
