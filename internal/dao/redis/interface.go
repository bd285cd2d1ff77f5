package redis

import (
	"context"
	"time"
)

// KV 水位存储依赖的最小键值接口，测试或其他后端可替换
type KV interface {
	// Set 写入字符串值，ttl 为 0 表示不过期
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 读取字符串值，键不存在时返回空串
	Get(ctx context.Context, key string) (string, error)
}
