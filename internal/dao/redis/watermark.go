package redis

import (
	"context"

	"github.com/spf13/cast"

	"kama_contact_sync/pkg/errorx"
)

// WatermarkStore 按客户端保存删除同步的水位（毫秒时间戳）
type WatermarkStore struct {
	cache  KV
	prefix string
}

// NewWatermarkStore 创建水位存储，键格式为 prefix + clientId
func NewWatermarkStore(cache KV, prefix string) *WatermarkStore {
	return &WatermarkStore{cache: cache, prefix: prefix}
}

func (w *WatermarkStore) key(clientID string) string {
	return w.prefix + clientID
}

// Load 读取客户端水位，不存在时返回 0 和 false
func (w *WatermarkStore) Load(ctx context.Context, clientID string) (int64, bool, error) {
	value, err := w.cache.Get(ctx, w.key(clientID))
	if err != nil {
		return 0, false, err
	}
	if value == "" {
		return 0, false, nil
	}
	ts, err := cast.ToInt64E(value)
	if err != nil {
		return 0, false, errorx.Wrapf(err, errorx.CodeCacheError, "invalid watermark for client %s", clientID)
	}
	return ts, true, nil
}

// Save 保存客户端水位，永不过期
func (w *WatermarkStore) Save(ctx context.Context, clientID string, ts int64) error {
	return w.cache.Set(ctx, w.key(clientID), cast.ToString(ts), 0)
}

