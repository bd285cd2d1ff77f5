package respond

// GetContactsRespond 联系人列表响应
// 使用位置:
//   - internal/handler/contact_handler.go: GetContacts
type GetContactsRespond struct {
	Total    int            `json:"total"`
	Contacts []*ContactData `json:"contacts"`
}

// GetDeletedContactsRespond 已删除联系人响应
// Watermark 为本次返回记录中最大的删除时间，客户端下次请求时作为 since 传入
// since 取闭区间，边界上的 ID 下次会再次返回
// 使用位置:
//   - internal/service/contactsync/service.go: DeletedSince
type GetDeletedContactsRespond struct {
	Since     int64   `json:"since"`
	Watermark int64   `json:"watermark"`
	Ids       []int64 `json:"ids"`
}

// PublishSnapshotRespond 快照导出响应
// 使用位置:
//   - internal/service/contactsync/service.go: PublishSnapshot
type PublishSnapshotRespond struct {
	SnapshotId   string `json:"snapshot_id"`
	ContactCount int    `json:"contact_count"`
	DeletedCount int    `json:"deleted_count"`
}

// IssueTokenRespond 签发访问令牌响应
type IssueTokenRespond struct {
	ClientId    string `json:"client_id"`
	AccessToken string `json:"access_token"`
}
