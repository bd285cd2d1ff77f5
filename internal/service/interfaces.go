// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
package service

import (
	"context"

	"kama_contact_sync/internal/dto/request"
	"kama_contact_sync/internal/dto/respond"
)

// ContactSyncService 联系人同步业务接口
type ContactSyncService interface {
	// ListContacts 按请求参数执行一次完整聚合
	ListContacts(ctx context.Context, req request.GetContactsRequest) (*respond.GetContactsRespond, error)
	// DeletedSince 返回客户端上次同步后删除的联系人，并推进该客户端的水位
	DeletedSince(ctx context.Context, clientID string, req request.GetDeletedContactsRequest) (*respond.GetDeletedContactsRespond, error)
	// PublishSnapshot 将当前聚合结果和删除记录导出到 Kafka
	PublishSnapshot(ctx context.Context, req request.PublishSnapshotRequest) (*respond.PublishSnapshotRespond, error)
}
