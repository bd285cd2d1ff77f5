package request

// GetDeletedContactsRequest 拉取已删除联系人
// since 为空时使用该客户端上次同步保存的水位
// 使用位置:
//   - internal/handler/contact_handler.go: GetDeletedContacts
type GetDeletedContactsRequest struct {
	Since *int64 `form:"since" json:"since" binding:"omitempty,min=0"`
}
