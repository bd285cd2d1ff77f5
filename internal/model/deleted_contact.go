package model

// DeletedContact 已删除联系人记录
// 只保留 ID 和删除时间，供增量同步使用
type DeletedContact struct {
	ContactID        int64 `gorm:"column:contact_id;primaryKey;autoIncrement:false"`
	DeletedTimestamp int64 `gorm:"column:contact_deleted_timestamp;index;not null;comment:删除时间（毫秒）"`
}

func (DeletedContact) TableName() string {
	return "deleted_contacts"
}

// All 返回所有需要迁移的模型
func All() []any {
	return []any{
		&Contact{},
		&Data{},
		&RawContact{},
		&Group{},
		&DeletedContact{},
	}
}
