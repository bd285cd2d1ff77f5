package contacts

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/dao/database"
	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/model"
)

// null 作为 dataRow 参数时对应列写入 NULL
const null = "\x00"

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SqlitePath: filepath.Join(t.TempDir(), "contacts.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func openMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openDB(t)
	require.NoError(t, database.Migrate(db))
	return db
}

func contact(id int64, name string) *model.Contact {
	return &model.Contact{
		ID:                   id,
		LookupKey:            "lookup-" + name,
		DisplayName:          model.NullString(name),
		LastUpdatedTimestamp: 1000 + id,
	}
}

// dataRow 依次填充 data1、data2 ...
func dataRow(contactID int64, mime string, cols ...string) *model.Data {
	r := &model.Data{ContactID: contactID, MimeType: mime}
	slots := []*sql.NullString{&r.Data1, &r.Data2, &r.Data3, &r.Data4, &r.Data5, &r.Data6, &r.Data7, &r.Data8, &r.Data9}
	for i, v := range cols {
		if v != null {
			*slots[i] = model.NullString(v)
		}
	}
	return r
}

func seed(t *testing.T, db *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Create(v).Error)
	}
}

// countingSource 记录每张表被扫描的次数
type countingSource struct {
	source.Source
	mu    sync.Mutex
	scans map[string]int
	total int
}

func newCountingSource(src source.Source) *countingSource {
	return &countingSource{Source: src, scans: make(map[string]int)}
}

func (c *countingSource) Scan(ctx context.Context, q source.Query) (source.Rows, error) {
	c.mu.Lock()
	c.scans[q.Table]++
	c.total++
	c.mu.Unlock()
	return c.Source.Scan(ctx, q)
}
