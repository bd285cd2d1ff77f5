// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/service/contacts"
	"kama_contact_sync/internal/service/contactsync"
)

// Services 聚合所有 Service 实例
type Services struct {
	ContactSync ContactSyncService
}

// Deps Service 层依赖
// Watermarks 与 Publisher 可以为 nil，分别表示不保存水位、不启用导出
type Deps struct {
	Aggregator *contacts.Aggregator
	Watermarks contactsync.WatermarkStore
	Publisher  contactsync.Publisher
	Aggregate  config.AggregateConfig
}

// NewServices 创建并注入所有 Service 实例
func NewServices(deps Deps) *Services {
	return &Services{
		ContactSync: contactsync.NewContactSyncService(deps.Aggregator, deps.Watermarks, deps.Publisher, deps.Aggregate),
	}
}
