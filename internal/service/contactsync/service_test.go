package contactsync

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kama_contact_sync/internal/config"
	myredis "kama_contact_sync/internal/dao/redis"
	"kama_contact_sync/internal/dto/request"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/internal/service/contacts"
	"kama_contact_sync/pkg/enum/field_type_enum"
	"kama_contact_sync/pkg/errorx"
)

type fakeAggregator struct {
	records  []*respond.ContactData
	deleted  []contacts.Deletion
	err      error
	lastOpts contacts.FetchOptions
	since    []int64
}

func (f *fakeAggregator) FetchAll(_ context.Context, opts contacts.FetchOptions) ([]*respond.ContactData, error) {
	f.lastOpts = opts
	if f.err != nil {
		return []*respond.ContactData{}, f.err
	}
	return f.records, nil
}

func (f *fakeAggregator) FetchDeletedSince(ctx context.Context, since int64) ([]int64, error) {
	deletions, err := f.FetchDeletionsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(deletions))
	for i, d := range deletions {
		ids[i] = d.ID
	}
	return ids, nil
}

func (f *fakeAggregator) FetchDeletionsSince(_ context.Context, since int64) ([]contacts.Deletion, error) {
	f.since = append(f.since, since)
	return f.deleted, f.err
}

type fakePublisher struct {
	snapshotIDs []string
	records     int
	deleted     []int64
}

func (f *fakePublisher) PublishSnapshot(_ context.Context, id string, records []*respond.ContactData) error {
	f.snapshotIDs = append(f.snapshotIDs, id)
	f.records += len(records)
	return nil
}

func (f *fakePublisher) PublishDeletions(_ context.Context, id string, ids []int64) error {
	f.snapshotIDs = append(f.snapshotIDs, id)
	f.deleted = append(f.deleted, ids...)
	return nil
}

func defaults() config.AggregateConfig {
	return config.AggregateConfig{
		EnabledFields: []string{"PHONE_NUMBERS", "EMAILS"},
		SortOrder:     "display_name ASC",
	}
}

func newWatermarks(t *testing.T) (*myredis.WatermarkStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return myredis.NewWatermarkStore(myredis.NewRedisCache(client), "wm:"), mr
}

func TestListContactsDefaults(t *testing.T) {
	agg := &fakeAggregator{records: []*respond.ContactData{{ID: 1}, {ID: 2}}}
	svc := NewContactSyncService(agg, nil, nil, defaults())

	resp, err := svc.ListContacts(context.Background(), request.GetContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, []field_type_enum.FieldType{field_type_enum.PHONE_NUMBERS, field_type_enum.EMAILS}, agg.lastOpts.Fields)
	assert.Equal(t, "display_name ASC", agg.lastOpts.SortOrder)
	assert.Equal(t, "", agg.lastOpts.Selection)
	assert.Empty(t, agg.lastOpts.SelectionArgs)
}

func TestListContactsFilters(t *testing.T) {
	agg := &fakeAggregator{}
	svc := NewContactSyncService(agg, nil, nil, defaults())

	_, err := svc.ListContacts(context.Background(), request.GetContactsRequest{
		Fields:       []string{"notes,groups"},
		Sort:         "updated_desc",
		StarredOnly:  true,
		UpdatedSince: 1700,
	})
	require.NoError(t, err)
	assert.Equal(t, []field_type_enum.FieldType{field_type_enum.NOTES, field_type_enum.GROUPS}, agg.lastOpts.Fields)
	assert.Equal(t, "contact_last_updated_timestamp DESC", agg.lastOpts.SortOrder)
	assert.Equal(t, "starred = ? AND contact_last_updated_timestamp >= ?", agg.lastOpts.Selection)
	assert.Equal(t, []any{1, int64(1700)}, agg.lastOpts.SelectionArgs)
}

func TestListContactsRejectsUnknownInput(t *testing.T) {
	svc := NewContactSyncService(&fakeAggregator{}, nil, nil, defaults())

	_, err := svc.ListContacts(context.Background(), request.GetContactsRequest{Fields: []string{"FAX"}})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.ListContacts(context.Background(), request.GetContactsRequest{Sort: "random"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestListContactsSchemaMismatch(t *testing.T) {
	agg := &fakeAggregator{err: errorx.New(errorx.CodeSchemaMismatch, "table contacts: missing columns lookup")}
	svc := NewContactSyncService(agg, nil, nil, defaults())

	_, err := svc.ListContacts(context.Background(), request.GetContactsRequest{})
	assert.True(t, errorx.IsSchemaMismatch(err))
}

func TestDeletedSinceWatermark(t *testing.T) {
	agg := &fakeAggregator{deleted: []contacts.Deletion{{ID: 9, DeletedAt: 5000}}}
	store, _ := newWatermarks(t)
	svc := NewContactSyncService(agg, store, nil, defaults())
	ctx := context.Background()

	resp, err := svc.DeletedSince(ctx, "phone-1", request.GetDeletedContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Since)
	assert.Equal(t, int64(5000), resp.Watermark)
	assert.Equal(t, []int64{9}, resp.Ids)

	// 没有新删除时水位保持不变
	agg.deleted = nil
	resp, err = svc.DeletedSince(ctx, "phone-1", request.GetDeletedContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), resp.Since)
	assert.Equal(t, int64(5000), resp.Watermark)
	assert.Empty(t, resp.Ids)

	// 其他客户端的水位互不影响
	resp, err = svc.DeletedSince(ctx, "phone-2", request.GetDeletedContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Since)

	explicit := int64(60)
	resp, err = svc.DeletedSince(ctx, "phone-1", request.GetDeletedContactsRequest{Since: &explicit})
	require.NoError(t, err)
	assert.Equal(t, int64(60), resp.Since)
	assert.Equal(t, []int64{0, 5000, 0, 60}, agg.since)
}

func TestDeletedSinceWatermarkUsesSourceTimestamps(t *testing.T) {
	// 删除时间由数据源时钟写入，可能远早于服务端当前时间
	agg := &fakeAggregator{deleted: []contacts.Deletion{
		{ID: 4, DeletedAt: 300},
		{ID: 7, DeletedAt: 120},
	}}
	store, mr := newWatermarks(t)
	svc := NewContactSyncService(agg, store, nil, defaults())
	ctx := context.Background()

	resp, err := svc.DeletedSince(ctx, "phone-1", request.GetDeletedContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Watermark)
	assert.Equal(t, []int64{4, 7}, resp.Ids)

	stored, err := mr.Get("wm:phone-1")
	require.NoError(t, err)
	assert.Equal(t, "300", stored)

	agg.deleted = []contacts.Deletion{{ID: 8, DeletedAt: 310}}
	resp, err = svc.DeletedSince(ctx, "phone-1", request.GetDeletedContactsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Since)
	assert.Equal(t, []int64{8}, resp.Ids)
	assert.Equal(t, int64(310), resp.Watermark)
}

func TestDeletedSinceWatermarkSaveFailure(t *testing.T) {
	agg := &fakeAggregator{deleted: []contacts.Deletion{{ID: 1, DeletedAt: 10}}}
	store, mr := newWatermarks(t)
	svc := NewContactSyncService(agg, store, nil, defaults())

	explicit := int64(0)
	mr.SetError("READONLY")
	resp, err := svc.DeletedSince(context.Background(), "phone-1", request.GetDeletedContactsRequest{Since: &explicit})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.Ids)
}

func TestDeletedSinceError(t *testing.T) {
	agg := &fakeAggregator{err: errors.New("disk I/O error")}
	store, mr := newWatermarks(t)
	svc := NewContactSyncService(agg, store, nil, defaults())

	_, err := svc.DeletedSince(context.Background(), "phone-1", request.GetDeletedContactsRequest{})
	require.Error(t, err)
	assert.False(t, mr.Exists("wm:phone-1"))
}

func TestPublishSnapshot(t *testing.T) {
	agg := &fakeAggregator{records: []*respond.ContactData{{ID: 1}}, deleted: []contacts.Deletion{{ID: 4, DeletedAt: 50}, {ID: 9, DeletedAt: 100}}}
	pub := &fakePublisher{}
	svc := NewContactSyncService(agg, nil, pub, defaults())

	resp, err := svc.PublishSnapshot(context.Background(), request.PublishSnapshotRequest{DeletedSince: 60})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ContactCount)
	assert.Equal(t, 2, resp.DeletedCount)
	assert.NotEmpty(t, resp.SnapshotId)
	assert.Equal(t, []string{resp.SnapshotId, resp.SnapshotId}, pub.snapshotIDs)
	assert.Equal(t, []int64{4, 9}, pub.deleted)
	assert.Equal(t, []int64{60}, agg.since)
}

func TestPublishSnapshotDisabled(t *testing.T) {
	svc := NewContactSyncService(&fakeAggregator{}, nil, nil, defaults())

	_, err := svc.PublishSnapshot(context.Background(), request.PublishSnapshotRequest{})
	assert.Equal(t, errorx.CodeUnavailable, errorx.GetCode(err))
}
