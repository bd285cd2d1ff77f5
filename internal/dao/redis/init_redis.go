// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含 Redis 连接初始化逻辑
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"strconv"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// NewClient 根据配置创建 Redis 客户端并检查连通性
func NewClient(ctx context.Context, conf config.RedisConfig) (*redis.Client, error) {
	// 拼接地址：host:port
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,
		// 连接池配置
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errorx.Wrapf(err, errorx.CodeCacheError, "redis ping %s", addr)
	}
	return client, nil
}
