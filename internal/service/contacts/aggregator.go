// Package contacts 将联系人主表与 data、raw_contacts、groups 等卫星表聚合为完整的联系人记录
// 每次调用都完整扫描一遍数据源，不在调用之间缓存任何结果
package contacts

import (
	"context"

	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/enum/field_type_enum"
)

// RecordFactory 创建空白记录，调用方可借此预置字段
type RecordFactory func() (*respond.ContactData, error)

// FetchOptions 单次聚合参数
// SortOrder、Selection、SelectionArgs 原样传给主表扫描
type FetchOptions struct {
	Fields        []field_type_enum.FieldType
	SortOrder     string
	Selection     string
	SelectionArgs []any
}

// Option Aggregator 配置项
type Option func(*Aggregator)

// WithRecordFactory 指定记录工厂
func WithRecordFactory(factory RecordFactory) Option {
	return func(a *Aggregator) {
		if factory != nil {
			a.factory = factory
		}
	}
}

// WithLabelLookup 替换内置标签表
func WithLabelLookup(lookup LabelLookup) Option {
	return func(a *Aggregator) {
		a.labels = NewLabelResolver(lookup)
	}
}

// WithParallelFetch 各属性类别并发查询
func WithParallelFetch(parallel bool) Option {
	return func(a *Aggregator) {
		a.parallel = parallel
	}
}

// Aggregator 联系人聚合器，只读数据源，可并发使用
type Aggregator struct {
	src      source.Source
	factory  RecordFactory
	labels   *LabelResolver
	parallel bool
}

// NewAggregator 创建聚合器
func NewAggregator(src source.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		src:     src,
		factory: defaultRecord,
		labels:  NewLabelResolver(nil),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func defaultRecord() (*respond.ContactData, error) {
	return &respond.ContactData{}, nil
}

// FetchAll 执行一次完整聚合，返回顺序与主表扫描顺序一致
// 主表投影无法解析时返回空列表和 CodeSchemaMismatch 错误
func (a *Aggregator) FetchAll(ctx context.Context, opts FetchOptions) ([]*respond.ContactData, error) {
	plan := NewPlan(opts.Fields)

	idx, err := fetchSatellites(ctx, a.src, plan, a.labels, a.parallel)
	if err != nil {
		return nil, err
	}

	records, byID, err := a.scanPrimary(ctx, opts, idx)
	if err != nil {
		return records, err
	}

	if err := a.linkAccounts(ctx, byID); err != nil {
		return nil, err
	}

	zap.L().Debug("contacts aggregated",
		zap.Int("count", len(records)),
		zap.Int("fields", len(plan.Fields())),
	)
	return records, nil
}
