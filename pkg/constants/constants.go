package constants

const (
	PUBLISH_BATCH_SIZE   = 500 // 每批写入 Kafka 的消息数
	SHUTDOWN_TIMEOUT_SEC = 5   // 优雅关闭等待时间（秒）
	JWT_ISSUER           = "kama_contact_sync"
	CTX_CLIENT_ID_KEY    = "client_id" // gin.Context 中保存客户端 ID 的键
)
