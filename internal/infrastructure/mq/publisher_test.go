package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/errorx"
)

type fakeWriter struct {
	batches [][]kafka.Message
	failAt  int
	closed  bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.failAt > 0 && len(f.batches)+1 == f.failAt {
		return errors.New("broker unavailable")
	}
	f.batches = append(f.batches, msgs)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublishSnapshot(t *testing.T) {
	snapshots, deletions := &fakeWriter{}, &fakeWriter{}
	p := newSnapshotPublisher(snapshots, deletions, 2)

	records := []*respond.ContactData{
		{ID: 1, LookupKey: "a"},
		{ID: 2, LookupKey: "b"},
		{ID: 3},
	}
	require.NoError(t, p.PublishSnapshot(context.Background(), "snap-1", records))

	require.Len(t, snapshots.batches, 2)
	assert.Len(t, snapshots.batches[0], 2)
	assert.Len(t, snapshots.batches[1], 1)

	last := snapshots.batches[1][0]
	assert.Equal(t, "3", string(last.Key))
	assert.Equal(t, "snap-1", header(last, headerSnapshotID))
	assert.Equal(t, kindContact, header(last, headerKind))

	var decoded respond.ContactData
	require.NoError(t, json.Unmarshal(snapshots.batches[0][1].Value, &decoded))
	assert.Equal(t, int64(2), decoded.ID)
	assert.Empty(t, deletions.batches)
}

func TestPublishDeletions(t *testing.T) {
	snapshots, deletions := &fakeWriter{}, &fakeWriter{}
	p := newSnapshotPublisher(snapshots, deletions, 10)

	require.NoError(t, p.PublishDeletions(context.Background(), "snap-2", []int64{4, 9}))
	require.Len(t, deletions.batches, 1)
	msgs := deletions.batches[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, "9", string(msgs[1].Key))
	assert.JSONEq(t, `{"contact_id":9,"snapshot_id":"snap-2"}`, string(msgs[1].Value))
	assert.Equal(t, kindDeleted, header(msgs[1], headerKind))
}

func TestPublishEmptyWritesNothing(t *testing.T) {
	snapshots, deletions := &fakeWriter{}, &fakeWriter{}
	p := newSnapshotPublisher(snapshots, deletions, 10)

	require.NoError(t, p.PublishSnapshot(context.Background(), "s", nil))
	require.NoError(t, p.PublishDeletions(context.Background(), "s", nil))
	assert.Empty(t, snapshots.batches)
	assert.Empty(t, deletions.batches)
}

func TestPublishWriteFailure(t *testing.T) {
	snapshots := &fakeWriter{failAt: 2}
	p := newSnapshotPublisher(snapshots, &fakeWriter{}, 1)

	err := p.PublishSnapshot(context.Background(), "s", []*respond.ContactData{{ID: 1}, {ID: 2}, {ID: 3}})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeMQError, errorx.GetCode(err))
	assert.Len(t, snapshots.batches, 1)
}

func TestClose(t *testing.T) {
	snapshots, deletions := &fakeWriter{}, &fakeWriter{}
	require.NoError(t, newSnapshotPublisher(snapshots, deletions, 1).Close())
	assert.True(t, snapshots.closed)
	assert.True(t, deletions.closed)
}
