package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/constants"
	"kama_contact_sync/pkg/errorx"
)

// 消息头
const (
	headerSnapshotID = "snapshot_id"
	headerKind       = "kind"

	kindContact = "contact"
	kindDeleted = "deleted"
)

// messageWriter kafka.Writer 中用到的方法
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// deletionEvent 删除记录消息体
type deletionEvent struct {
	ContactId  int64  `json:"contact_id"`
	SnapshotId string `json:"snapshot_id"`
}

// SnapshotPublisher 将聚合结果写入快照主题，将删除 ID 写入删除主题
type SnapshotPublisher struct {
	snapshots messageWriter
	deletions messageWriter
	batchSize int
}

// NewSnapshotPublisher 根据配置创建 Kafka 写入器
func NewSnapshotPublisher(conf config.KafkaConfig) *SnapshotPublisher {
	return newSnapshotPublisher(
		newWriter(conf, conf.SnapshotTopic),
		newWriter(conf, conf.DeletionTopic),
		constants.PUBLISH_BATCH_SIZE,
	)
}

func newSnapshotPublisher(snapshots, deletions messageWriter, batchSize int) *SnapshotPublisher {
	if batchSize <= 0 {
		batchSize = constants.PUBLISH_BATCH_SIZE
	}
	return &SnapshotPublisher{snapshots: snapshots, deletions: deletions, batchSize: batchSize}
}

// PublishSnapshot 每条记录一条消息，key 为 lookup key（为空时使用 ID）
func (p *SnapshotPublisher) PublishSnapshot(ctx context.Context, snapshotID string, records []*respond.ContactData) error {
	msgs := make([]kafka.Message, 0, len(records))
	for _, record := range records {
		value, err := json.Marshal(record)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeMQError, "marshal contact %d", record.ID)
		}
		key := record.LookupKey
		if key == "" {
			key = strconv.FormatInt(record.ID, 10)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(key),
			Value:   value,
			Headers: headers(snapshotID, kindContact),
		})
	}
	return p.write(ctx, p.snapshots, msgs)
}

// PublishDeletions 每个删除 ID 一条消息
func (p *SnapshotPublisher) PublishDeletions(ctx context.Context, snapshotID string, ids []int64) error {
	msgs := make([]kafka.Message, 0, len(ids))
	for _, id := range ids {
		value, err := json.Marshal(deletionEvent{ContactId: id, SnapshotId: snapshotID})
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeMQError, "marshal deletion %d", id)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(strconv.FormatInt(id, 10)),
			Value:   value,
			Headers: headers(snapshotID, kindDeleted),
		})
	}
	return p.write(ctx, p.deletions, msgs)
}

// write 分批写入，任一批失败即返回
func (p *SnapshotPublisher) write(ctx context.Context, w messageWriter, msgs []kafka.Message) error {
	for start := 0; start < len(msgs); start += p.batchSize {
		end := start + p.batchSize
		if end > len(msgs) {
			end = len(msgs)
		}
		if err := w.WriteMessages(ctx, msgs[start:end]...); err != nil {
			return errorx.Wrapf(err, errorx.CodeMQError, "write kafka messages %d-%d", start, end)
		}
	}
	return nil
}

// Close 关闭两个写入器
func (p *SnapshotPublisher) Close() error {
	var firstErr error
	for _, w := range []messageWriter{p.snapshots, p.deletions} {
		if err := w.Close(); err != nil {
			zap.L().Error("close kafka writer", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func headers(snapshotID, kind string) []kafka.Header {
	return []kafka.Header{
		{Key: headerSnapshotID, Value: []byte(snapshotID)},
		{Key: headerKind, Value: []byte(kind)},
	}
}
