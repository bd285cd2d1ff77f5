package source

import (
	"strings"

	"github.com/spf13/cast"

	"kama_contact_sync/pkg/errorx"
)

// Projection 将一组必需列解析为结果中的位置，解析一次后按序号读取
// 第 i 个访问器对应 Resolve 传入的第 i 个列名
type Projection struct {
	table string
	rows  Rows
	pos   []int
	cur   []any
	err   error
}

// Resolve 在 rows 的实际列中查找 columns
// 任意一列缺失时返回 CodeSchemaMismatch 错误
func Resolve(table string, rows Rows, columns ...string) (*Projection, error) {
	index := make(map[string]int, len(rows.Columns()))
	for i, name := range rows.Columns() {
		index[name] = i
	}

	pos := make([]int, len(columns))
	var missing []string
	for i, name := range columns {
		p, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		pos[i] = p
	}
	if len(missing) > 0 {
		return nil, errorx.Newf(errorx.CodeSchemaMismatch, "table %s: missing columns %s", table, strings.Join(missing, ", "))
	}
	return &Projection{table: table, rows: rows, pos: pos}, nil
}

// Next 读取下一行
func (p *Projection) Next() bool {
	if p.err != nil || !p.rows.Next() {
		return false
	}
	values, err := p.rows.Values()
	if err != nil {
		p.err = err
		return false
	}
	p.cur = values
	return true
}

// Err 返回遍历错误（已包装为 CodeDBError）
func (p *Projection) Err() error {
	err := p.err
	if err == nil {
		err = p.rows.Err()
	}
	return wrapDBErrorf(err, "iterate table %s", p.table)
}

func (p *Projection) value(i int) any {
	v := p.cur[p.pos[i]]
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// IsNull 第 i 列是否为 NULL
func (p *Projection) IsNull(i int) bool {
	return p.cur[p.pos[i]] == nil
}

// Int 以 int 读取第 i 列，NULL 或无法转换时为 0
func (p *Projection) Int(i int) int {
	return int(p.Long(i))
}

// Long 以 int64 读取第 i 列，NULL 或无法转换时为 0
func (p *Projection) Long(i int) int64 {
	n, err := cast.ToInt64E(p.value(i))
	if err != nil {
		return 0
	}
	return n
}

// String 以字符串读取第 i 列，NULL 时为空串
func (p *Projection) String(i int) string {
	s, err := cast.ToStringE(p.value(i))
	if err != nil {
		return ""
	}
	return s
}

// NullString 读取可空字符串列，第二个返回值表示是否非 NULL
func (p *Projection) NullString(i int) (string, bool) {
	if p.IsNull(i) {
		return "", false
	}
	return p.String(i), true
}
