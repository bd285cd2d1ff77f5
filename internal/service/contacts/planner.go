package contacts

import "kama_contact_sync/pkg/enum/field_type_enum"

// Plan 本次聚合需要查询的属性类别
// 未启用的类别不发出任何查询，对应槽位保持 nil
type Plan struct {
	enabled map[field_type_enum.FieldType]struct{}
}

// NewPlan 根据启用列表生成查询计划，重复或未知的类别会被忽略
func NewPlan(fields []field_type_enum.FieldType) Plan {
	enabled := make(map[field_type_enum.FieldType]struct{}, len(fields))
	for _, f := range fields {
		if f.Valid() {
			enabled[f] = struct{}{}
		}
	}
	return Plan{enabled: enabled}
}

// Fetch 是否需要查询该类别
func (p Plan) Fetch(field field_type_enum.FieldType) bool {
	_, ok := p.enabled[field]
	return ok
}

// Fields 按固定顺序返回启用的类别
func (p Plan) Fields() []field_type_enum.FieldType {
	fields := make([]field_type_enum.FieldType, 0, len(p.enabled))
	for _, f := range field_type_enum.All {
		if p.Fetch(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
