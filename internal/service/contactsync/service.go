// Package contactsync 面向同步客户端的联系人业务：全量拉取、删除增量和快照导出
package contactsync

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/dto/request"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/internal/service/contacts"
	"kama_contact_sync/pkg/enum/field_type_enum"
	"kama_contact_sync/pkg/errorx"
	"kama_contact_sync/pkg/util/snowflake"
)

// Aggregator 联系人聚合能力
type Aggregator interface {
	FetchAll(ctx context.Context, opts contacts.FetchOptions) ([]*respond.ContactData, error)
	FetchDeletedSince(ctx context.Context, since int64) ([]int64, error)
	FetchDeletionsSince(ctx context.Context, since int64) ([]contacts.Deletion, error)
}

// WatermarkStore 按客户端保存删除同步水位
type WatermarkStore interface {
	Load(ctx context.Context, clientID string) (int64, bool, error)
	Save(ctx context.Context, clientID string, ts int64) error
}

// Publisher 快照导出
type Publisher interface {
	PublishSnapshot(ctx context.Context, snapshotID string, records []*respond.ContactData) error
	PublishDeletions(ctx context.Context, snapshotID string, ids []int64) error
}

// sortOrders 请求中的排序名称 -> 主表排序子句
var sortOrders = map[string]string{
	"name_asc":     "display_name ASC",
	"name_desc":    "display_name DESC",
	"updated_asc":  "contact_last_updated_timestamp ASC",
	"updated_desc": "contact_last_updated_timestamp DESC",
}

// contactSyncService 联系人同步业务逻辑实现
type contactSyncService struct {
	agg        Aggregator
	watermarks WatermarkStore
	publisher  Publisher
	defaults   config.AggregateConfig
}

// NewContactSyncService 构造函数，watermarks 与 publisher 可以为 nil
func NewContactSyncService(agg Aggregator, watermarks WatermarkStore, publisher Publisher, defaults config.AggregateConfig) *contactSyncService {
	return &contactSyncService{
		agg:        agg,
		watermarks: watermarks,
		publisher:  publisher,
		defaults:   defaults,
	}
}

// ListContacts 按请求参数执行一次完整聚合
func (s *contactSyncService) ListContacts(ctx context.Context, req request.GetContactsRequest) (*respond.GetContactsRespond, error) {
	opts, err := s.fetchOptions(req.Fields, req.Sort)
	if err != nil {
		return nil, err
	}

	var conds []string
	if req.StarredOnly {
		conds = append(conds, "starred = ?")
		opts.SelectionArgs = append(opts.SelectionArgs, 1)
	}
	if req.UpdatedSince > 0 {
		conds = append(conds, "contact_last_updated_timestamp >= ?")
		opts.SelectionArgs = append(opts.SelectionArgs, req.UpdatedSince)
	}
	opts.Selection = strings.Join(conds, " AND ")

	records, err := s.agg.FetchAll(ctx, opts)
	if err != nil {
		zap.L().Error("fetch contacts failed", zap.Error(err))
		return nil, err
	}
	return &respond.GetContactsRespond{Total: len(records), Contacts: records}, nil
}

// DeletedSince 返回删除增量
// 请求未指定 since 时使用该客户端保存的水位
// 新水位取本次扫描到的最大删除时间，与数据源使用同一时钟；没有新删除时保持不变
func (s *contactSyncService) DeletedSince(ctx context.Context, clientID string, req request.GetDeletedContactsRequest) (*respond.GetDeletedContactsRespond, error) {
	since, err := s.resolveSince(ctx, clientID, req.Since)
	if err != nil {
		return nil, err
	}

	deletions, err := s.agg.FetchDeletionsSince(ctx, since)
	if err != nil {
		zap.L().Error("fetch deleted contacts failed", zap.Int64("since", since), zap.Error(err))
		return nil, err
	}
	watermark := since
	ids := make([]int64, len(deletions))
	for i, d := range deletions {
		ids[i] = d.ID
		if d.DeletedAt > watermark {
			watermark = d.DeletedAt
		}
	}

	if s.watermarks != nil && clientID != "" {
		if err := s.watermarks.Save(ctx, clientID, watermark); err != nil {
			zap.L().Warn("save watermark failed", zap.String("client_id", clientID), zap.Error(err))
		}
	}

	return &respond.GetDeletedContactsRespond{Since: since, Watermark: watermark, Ids: ids}, nil
}

func (s *contactSyncService) resolveSince(ctx context.Context, clientID string, since *int64) (int64, error) {
	if since != nil {
		return *since, nil
	}
	if s.watermarks == nil || clientID == "" {
		return 0, nil
	}
	ts, ok, err := s.watermarks.Load(ctx, clientID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return ts, nil
}

// PublishSnapshot 导出一次完整快照，所有消息带同一个快照 ID
func (s *contactSyncService) PublishSnapshot(ctx context.Context, req request.PublishSnapshotRequest) (*respond.PublishSnapshotRespond, error) {
	if s.publisher == nil {
		return nil, errorx.New(errorx.CodeUnavailable, "快照导出未启用")
	}
	opts, err := s.fetchOptions(req.Fields, "")
	if err != nil {
		return nil, err
	}

	records, err := s.agg.FetchAll(ctx, opts)
	if err != nil {
		return nil, err
	}
	ids, err := s.agg.FetchDeletedSince(ctx, req.DeletedSince)
	if err != nil {
		return nil, err
	}

	snapshotID := snowflake.NextSnapshotID()
	if err := s.publisher.PublishSnapshot(ctx, snapshotID, records); err != nil {
		return nil, err
	}
	if err := s.publisher.PublishDeletions(ctx, snapshotID, ids); err != nil {
		return nil, err
	}
	zap.L().Info("snapshot published",
		zap.String("snapshot_id", snapshotID),
		zap.Int("contacts", len(records)),
		zap.Int("deleted", len(ids)),
	)
	return &respond.PublishSnapshotRespond{
		SnapshotId:   snapshotID,
		ContactCount: len(records),
		DeletedCount: len(ids),
	}, nil
}

// fetchOptions 请求未指定的字段和排序使用配置默认值
func (s *contactSyncService) fetchOptions(fieldNames []string, sort string) (contacts.FetchOptions, error) {
	names := fieldNames
	if len(names) == 0 {
		names = s.defaults.EnabledFields
	}
	fields, err := field_type_enum.ParseList(names)
	if err != nil {
		return contacts.FetchOptions{}, err
	}

	order := s.defaults.SortOrder
	if sort != "" {
		o, ok := sortOrders[sort]
		if !ok {
			return contacts.FetchOptions{}, errorx.Newf(errorx.CodeInvalidParam, "不支持的排序 %q", sort)
		}
		order = o
	}
	return contacts.FetchOptions{Fields: fields, SortOrder: order}, nil
}
