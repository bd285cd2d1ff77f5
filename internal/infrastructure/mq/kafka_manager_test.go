package mq

import (
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/pkg/errorx"
)

type fakeAdmin struct {
	controller kafka.Broker
	createErr  error
	created    []kafka.TopicConfig
	closed     bool
}

func (f *fakeAdmin) Controller() (kafka.Broker, error) { return f.controller, nil }

func (f *fakeAdmin) CreateTopics(topics ...kafka.TopicConfig) error {
	f.created = append(f.created, topics...)
	return f.createErr
}

func (f *fakeAdmin) Close() error {
	f.closed = true
	return nil
}

// fakeDialer 按地址返回预设连接，并记录拨号顺序
type fakeDialer struct {
	conns  map[string]*fakeAdmin
	dialed []string
}

func (d *fakeDialer) dial(addr string) (topicAdmin, error) {
	d.dialed = append(d.dialed, addr)
	conn, ok := d.conns[addr]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return conn, nil
}

func kafkaConf() config.KafkaConfig {
	return config.KafkaConfig{
		HostPort:      "127.0.0.1:9092",
		SnapshotTopic: "contact_snapshot",
		DeletionTopic: "contact_deleted",
		Partition:     3,
	}
}

func TestCreateTopicsOnController(t *testing.T) {
	bootstrap := &fakeAdmin{controller: kafka.Broker{Host: "127.0.0.1", Port: 9092}}
	d := &fakeDialer{conns: map[string]*fakeAdmin{"127.0.0.1:9092": bootstrap}}

	require.NoError(t, createTopics(d.dial, kafkaConf()))

	require.Len(t, bootstrap.created, 2)
	assert.Equal(t, "contact_snapshot", bootstrap.created[0].Topic)
	assert.Equal(t, "contact_deleted", bootstrap.created[1].Topic)
	assert.Equal(t, 3, bootstrap.created[0].NumPartitions)
	assert.Equal(t, []string{"127.0.0.1:9092"}, d.dialed)
	assert.True(t, bootstrap.closed)
}

func TestCreateTopicsRedialsController(t *testing.T) {
	bootstrap := &fakeAdmin{controller: kafka.Broker{Host: "10.0.0.2", Port: 9093}}
	controller := &fakeAdmin{}
	d := &fakeDialer{conns: map[string]*fakeAdmin{
		"127.0.0.1:9092": bootstrap,
		"10.0.0.2:9093":  controller,
	}}

	require.NoError(t, createTopics(d.dial, kafkaConf()))

	assert.Empty(t, bootstrap.created)
	assert.Len(t, controller.created, 2)
	assert.True(t, bootstrap.closed)
	assert.True(t, controller.closed)
}

func TestCreateTopicsAlreadyExists(t *testing.T) {
	bootstrap := &fakeAdmin{
		controller: kafka.Broker{Host: "127.0.0.1", Port: 9092},
		createErr:  kafka.TopicAlreadyExists,
	}
	d := &fakeDialer{conns: map[string]*fakeAdmin{"127.0.0.1:9092": bootstrap}}

	assert.NoError(t, createTopics(d.dial, kafkaConf()))
}

func TestCreateTopicsErrors(t *testing.T) {
	err := createTopics((&fakeDialer{}).dial, kafkaConf())
	require.Error(t, err)
	assert.Equal(t, errorx.CodeMQError, errorx.GetCode(err))

	bootstrap := &fakeAdmin{
		controller: kafka.Broker{Host: "127.0.0.1", Port: 9092},
		createErr:  kafka.InvalidPartitionNumber,
	}
	d := &fakeDialer{conns: map[string]*fakeAdmin{"127.0.0.1:9092": bootstrap}}
	err = createTopics(d.dial, kafkaConf())
	require.Error(t, err)
	assert.Equal(t, errorx.CodeMQError, errorx.GetCode(err))
}
