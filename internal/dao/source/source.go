// Package source 定义聚合核心所依赖的只读表格数据源
// 核心只需要"按表扫描 + 按列名读取"两种能力，具体存储由实现决定
package source

import "context"

// Query 描述一次表扫描
// Selection 与 SelectionArgs 对调用方透明，原样传给数据源
type Query struct {
	Table         string   // 表名
	Projection    []string // 需要读取的列，顺序即结果中的列顺序
	Selection     string   // 过滤条件，如 "mimetype = ?"，为空表示不过滤
	SelectionArgs []any    // 过滤参数
	OrderBy       string   // 排序，如 "contact_id"，为空表示不排序
}

// Source 可扫描的数据源
type Source interface {
	// Scan 打开一次扫描，调用方负责 Close 返回的 Rows
	// 数据源中不存在的列不会出现在 Rows.Columns() 中，由调用方在解析投影时判断
	Scan(ctx context.Context, q Query) (Rows, error)
}

// Rows 单向游标
type Rows interface {
	// Columns 实际返回的列名
	Columns() []string
	// Next 前进到下一行，没有更多行时返回 false
	Next() bool
	// Values 当前行的原始值，与 Columns() 一一对应
	Values() ([]any, error)
	// Err 遍历过程中遇到的错误
	Err() error
	// Close 释放扫描资源，可重复调用
	Close() error
}
