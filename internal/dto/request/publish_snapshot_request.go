package request

// PublishSnapshotRequest 导出联系人快照到 Kafka
// 使用位置:
//   - internal/handler/contact_handler.go: PublishSnapshot
type PublishSnapshotRequest struct {
	Fields       []string `json:"fields" binding:"omitempty,dive,field_type"`
	DeletedSince int64    `json:"deleted_since" binding:"min=0"`
}
