package model

import "database/sql"

// Data 联系人属性表（卫星表）
// 所有属性类别共用一张表，通过 mimetype 区分，data1~data9 的含义随类别变化
type Data struct {
	ID        int64          `gorm:"column:_id;primaryKey;autoIncrement"`
	ContactID int64          `gorm:"column:contact_id;index;not null;comment:联系人ID"`
	MimeType  string         `gorm:"column:mimetype;index;type:varchar(128);not null;comment:属性类别"`
	IsPrimary int8           `gorm:"column:is_primary;not null;default:0;comment:是否首选，0.否，1.是"`
	Data1     sql.NullString `gorm:"column:data1;type:text"`
	Data2     sql.NullString `gorm:"column:data2;type:text"`
	Data3     sql.NullString `gorm:"column:data3;type:text"`
	Data4     sql.NullString `gorm:"column:data4;type:text"`
	Data5     sql.NullString `gorm:"column:data5;type:text"`
	Data6     sql.NullString `gorm:"column:data6;type:text"`
	Data7     sql.NullString `gorm:"column:data7;type:text"`
	Data8     sql.NullString `gorm:"column:data8;type:text"`
	Data9     sql.NullString `gorm:"column:data9;type:text"`
}

func (Data) TableName() string {
	return "data"
}

// NullString 构造非空的 sql.NullString，便于填充 data 列
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
