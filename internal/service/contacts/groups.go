package contacts

import (
	"context"

	"go.uber.org/zap"

	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/errorx"
)

// loadGroups 读取全部分组，同一分组只构造一次，由所有成员记录共享
func loadGroups(ctx context.Context, src source.Source) (map[int64]*respond.Group, error) {
	columns := []string{"_id", "title"}
	rows, err := src.Scan(ctx, source.Query{Table: tableGroups, Projection: columns})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make(map[int64]*respond.Group)
	p, err := source.Resolve(tableGroups, rows, columns...)
	if err != nil {
		if errorx.IsSchemaMismatch(err) {
			zap.L().Warn("groups projection unresolved, memberships resolve to nil", zap.Error(err))
			return groups, nil
		}
		return nil, err
	}
	for p.Next() {
		id := p.Long(0)
		groups[id] = &respond.Group{ID: id, Title: p.String(1)}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// loadGroupIndex 先加载分组，再按成员关系生成 联系人ID -> 分组列表
// 成员关系引用了不存在的分组时，该位置为 nil
func loadGroupIndex(ctx context.Context, src source.Source, labels *LabelResolver) (map[int64][]*respond.Group, error) {
	groups, err := loadGroups(ctx, src)
	if err != nil {
		return nil, err
	}
	ids, err := collectList(ctx, src, labels, memberships)
	if err != nil {
		return nil, err
	}

	index := make(map[int64][]*respond.Group, len(ids))
	for contactID, groupIDs := range ids {
		list := make([]*respond.Group, len(groupIDs))
		for i, gid := range groupIDs {
			list[i] = groups[gid]
		}
		index[contactID] = list
	}
	return index, nil
}
