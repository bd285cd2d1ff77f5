// Package snowflake 生成按时间递增的快照 ID
package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init 初始化节点，machineID 超出 0-1023 时使用 1
// 只有第一次调用生效
func Init(machineID int64) {
	nodeOnce.Do(func() {
		if machineID < 0 || machineID > 1023 {
			zap.L().Warn("invalid snowflake machine id, using 1", zap.Int64("machineID", machineID))
			machineID = 1
		}
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			zap.L().Fatal("init snowflake node", zap.Error(err))
		}
	})
}

// NextSnapshotID 生成快照 ID（字符串形式）
// 同一节点生成的 ID 单调递增，下游可据此判断快照先后
func NextSnapshotID() string {
	Init(1)
	return node.Generate().String()
}
