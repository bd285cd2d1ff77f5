// Package mq 负责将联系人快照和删除记录导出到 Kafka
package mq

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/pkg/errorx"
)

// newWriter 创建指定主题的写入器
// 使用 Hash 均衡器，同一联系人的消息始终落在同一分区
// 主题由 CreateTopics 预先创建，写入时不自动建主题
func newWriter(conf config.KafkaConfig, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(conf.HostPort),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           conf.Timeout * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: false,
	}
}

// topicAdmin 建主题用到的连接能力，*kafka.Conn 满足该接口
type topicAdmin interface {
	Controller() (kafka.Broker, error)
	CreateTopics(topics ...kafka.TopicConfig) error
	Close() error
}

type dialFunc func(addr string) (topicAdmin, error)

func dialTCP(addr string) (topicAdmin, error) {
	conn, err := kafka.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// CreateTopics 创建快照和删除主题，已存在的主题不受影响
func CreateTopics(conf config.KafkaConfig) error {
	return createTopics(dialTCP, conf)
}

func createTopics(dial dialFunc, conf config.KafkaConfig) error {
	// 连接至任意kafka节点，再转到 controller 上建主题
	conn, err := dial(conf.HostPort)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "dial kafka %s", conf.HostPort)
	}
	controller, err := conn.Controller()
	if err != nil {
		_ = conn.Close()
		return errorx.Wrap(err, errorx.CodeMQError, "find kafka controller")
	}
	controllerAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	if controllerAddr != conf.HostPort {
		_ = conn.Close()
		if conn, err = dial(controllerAddr); err != nil {
			return errorx.Wrapf(err, errorx.CodeMQError, "dial kafka controller %s", controllerAddr)
		}
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             conf.SnapshotTopic,
			NumPartitions:     conf.Partition,
			ReplicationFactor: 1,
		},
		{
			Topic:             conf.DeletionTopic,
			NumPartitions:     conf.Partition,
			ReplicationFactor: 1,
		},
	}
	if err := conn.CreateTopics(topicConfigs...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return errorx.Wrap(err, errorx.CodeMQError, "create kafka topics")
	}
	zap.L().Info("kafka topics ready",
		zap.String("snapshot", conf.SnapshotTopic),
		zap.String("deletion", conf.DeletionTopic),
	)
	return nil
}
