package contacts

import (
	"context"

	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/pkg/enum/field_type_enum"
	"kama_contact_sync/pkg/errorx"
)

// rowBuilder 从当前行构造一个属性值，返回 false 表示跳过该行
// 第 0 列固定为 contact_id，属性列从 1 开始
type rowBuilder[V any] func(p *source.Projection, labels *LabelResolver) (V, bool)

// satellite 描述 data 表中的一个属性类别：过滤条件、投影列和行构造方式
type satellite[V any] struct {
	field    field_type_enum.FieldType
	mimeType string
	columns  []string
	build    rowBuilder[V]
}

// scan 扫描该类别的所有行，对每个成功构造的值调用 emit
// 投影无法解析时记录告警并返回 nil，由调用方得到空索引
func (s satellite[V]) scan(ctx context.Context, src source.Source, labels *LabelResolver, emit func(id int64, v V)) error {
	rows, err := src.Scan(ctx, source.Query{
		Table:         tableData,
		Projection:    s.columns,
		Selection:     "mimetype = ?",
		SelectionArgs: []any{s.mimeType},
	})
	if err != nil {
		return err
	}
	defer rows.Close()

	p, err := source.Resolve(tableData, rows, s.columns...)
	if err != nil {
		if errorx.IsSchemaMismatch(err) {
			zap.L().Warn("satellite projection unresolved, field left unset",
				zap.String("field", string(s.field)),
				zap.Error(err),
			)
			return nil
		}
		return err
	}

	for p.Next() {
		v, ok := s.build(p, labels)
		if !ok {
			continue
		}
		emit(p.Long(0), v)
	}
	return p.Err()
}

// collectList 将同一联系人的多行按扫描顺序归入同一列表
func collectList[V any](ctx context.Context, src source.Source, labels *LabelResolver, s satellite[V]) (map[int64][]V, error) {
	index := make(map[int64][]V)
	err := s.scan(ctx, src, labels, func(id int64, v V) {
		index[id] = append(index[id], v)
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// collectOne 单值类别，同一联系人出现多行时以最后一行为准
func collectOne[V any](ctx context.Context, src source.Source, labels *LabelResolver, s satellite[V]) (map[int64]V, error) {
	index := make(map[int64]V)
	err := s.scan(ctx, src, labels, func(id int64, v V) {
		index[id] = v
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}
