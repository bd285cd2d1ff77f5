package source

import (
	"context"
	"database/sql"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormSource 基于 GORM 连接的数据源，支持 MySQL 和 SQLite
// 每次扫描前重新读取表结构，不保存任何跨调用状态
type GormSource struct {
	db *gorm.DB
}

// NewGormSource 创建 GORM 数据源
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// Scan 执行表扫描
// 表不存在时返回没有列的空结果；投影中不存在的列会被忽略
func (s *GormSource) Scan(ctx context.Context, q Query) (Rows, error) {
	existing, err := s.tableColumns(ctx, q.Table)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		zap.L().Debug("table not found", zap.String("table", q.Table))
		return emptyRows{}, nil
	}

	selected := make([]string, 0, len(q.Projection))
	for _, name := range q.Projection {
		if _, ok := existing[name]; ok {
			selected = append(selected, name)
		}
	}
	if len(selected) == 0 {
		return emptyRows{}, nil
	}

	tx := s.db.WithContext(ctx).Table(q.Table).Select(selected)
	if q.Selection != "" {
		tx = tx.Where(q.Selection, q.SelectionArgs...)
	}
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, wrapDBErrorf(err, "scan table %s", q.Table)
	}
	names, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, wrapDBErrorf(err, "read columns of %s", q.Table)
	}
	return &sqlRows{rows: rows, columns: names}, nil
}

// tableColumns 返回表中已存在的列，表不存在时返回 nil
func (s *GormSource) tableColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	migrator := s.db.WithContext(ctx).Migrator()
	if !migrator.HasTable(table) {
		return nil, nil
	}
	types, err := migrator.ColumnTypes(table)
	if err != nil {
		return nil, wrapDBErrorf(err, "inspect columns of %s", table)
	}
	cols := make(map[string]struct{}, len(types))
	for _, ct := range types {
		cols[ct.Name()] = struct{}{}
	}
	return cols, nil
}

// sqlRows 将 *sql.Rows 适配为 Rows
type sqlRows struct {
	rows    *sql.Rows
	columns []string
	once    sync.Once
	err     error
}

func (r *sqlRows) Columns() []string { return r.columns }

func (r *sqlRows) Next() bool { return r.rows.Next() }

func (r *sqlRows) Values() ([]any, error) {
	values := make([]any, len(r.columns))
	dest := make([]any, len(r.columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := r.rows.Scan(dest...); err != nil {
		return nil, err
	}
	// 驱动可能复用 []byte 缓冲区，需要拷贝
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}

func (r *sqlRows) Err() error { return r.rows.Err() }

func (r *sqlRows) Close() error {
	r.once.Do(func() {
		r.err = r.rows.Close()
	})
	return r.err
}

// emptyRows 没有列也没有行的结果
type emptyRows struct{}

func (emptyRows) Columns() []string      { return nil }
func (emptyRows) Next() bool             { return false }
func (emptyRows) Values() ([]any, error) { return nil, nil }
func (emptyRows) Err() error             { return nil }
func (emptyRows) Close() error           { return nil }
