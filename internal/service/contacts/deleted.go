package contacts

import (
	"context"

	"kama_contact_sync/internal/dao/source"
)

// Deletion 一条删除记录，DeletedAt 为数据源写入的删除时间（毫秒）
type Deletion struct {
	ID        int64
	DeletedAt int64
}

// FetchDeletedSince 返回删除时间不早于 since（毫秒）的联系人 ID，按 ID 升序
// contact_id 列缺失说明数据源结构不符，返回 CodeSchemaMismatch 错误
func (a *Aggregator) FetchDeletedSince(ctx context.Context, since int64) ([]int64, error) {
	deletions, err := a.FetchDeletionsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(deletions))
	for i, d := range deletions {
		ids[i] = d.ID
	}
	return ids, nil
}

// FetchDeletionsSince 与 FetchDeletedSince 相同，额外带回每条记录的删除时间
func (a *Aggregator) FetchDeletionsSince(ctx context.Context, since int64) ([]Deletion, error) {
	rows, err := a.src.Scan(ctx, source.Query{
		Table:         tableDeletedContacts,
		Projection:    []string{colContactID, colDeletedTimestamp},
		Selection:     colDeletedTimestamp + " >= ?",
		SelectionArgs: []any{since},
		OrderBy:       colContactID,
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p, err := source.Resolve(tableDeletedContacts, rows, colContactID, colDeletedTimestamp)
	if err != nil {
		return nil, err
	}

	deletions := []Deletion{}
	for p.Next() {
		deletions = append(deletions, Deletion{ID: p.Long(0), DeletedAt: p.Long(1)})
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return deletions, nil
}
