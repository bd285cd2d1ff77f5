package request

// GetContactsRequest 拉取联系人聚合记录
// fields 可重复或逗号分隔，为空时使用配置中的默认字段
// 使用位置:
//   - internal/handler/contact_handler.go: GetContacts
//   - internal/service/contactsync/service.go: ListContacts
type GetContactsRequest struct {
	Fields       []string `form:"fields" json:"fields" binding:"omitempty,dive,field_type"`
	Sort         string   `form:"sort" json:"sort" binding:"omitempty,oneof=name_asc name_desc updated_asc updated_desc"`
	StarredOnly  bool     `form:"starredOnly" json:"starred_only"`
	UpdatedSince int64    `form:"updatedSince" json:"updated_since" binding:"min=0"`
}
