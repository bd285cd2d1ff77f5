package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/dao/database"
	"kama_contact_sync/internal/model"
	"kama_contact_sync/pkg/errorx"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SqlitePath: filepath.Join(t.TempDir(), "contacts.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func collect(t *testing.T, rows Rows, table string, columns ...string) [][]string {
	t.Helper()
	defer rows.Close()
	p, err := Resolve(table, rows, columns...)
	require.NoError(t, err)
	var out [][]string
	for p.Next() {
		row := make([]string, len(columns))
		for i := range columns {
			row[i] = p.String(i)
		}
		out = append(out, row)
	}
	require.NoError(t, p.Err())
	return out
}

func TestGormSourceScan(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create([]*model.Data{
		{ContactID: 2, MimeType: "phone", Data1: model.NullString("555")},
		{ContactID: 1, MimeType: "phone", Data1: model.NullString("123")},
		{ContactID: 1, MimeType: "email", Data1: model.NullString("a@b.c")},
	}).Error)

	src := NewGormSource(db)
	rows, err := src.Scan(context.Background(), Query{
		Table:         "data",
		Projection:    []string{"contact_id", "data1"},
		Selection:     "mimetype = ?",
		SelectionArgs: []any{"phone"},
		OrderBy:       "contact_id",
	})
	require.NoError(t, err)

	got := collect(t, rows, "data", "contact_id", "data1")
	assert.Equal(t, [][]string{{"1", "123"}, {"2", "555"}}, got)
}

func TestGormSourceMissingColumn(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Exec("CREATE TABLE deleted_contacts (contact_id INTEGER)").Error)

	src := NewGormSource(db)
	rows, err := src.Scan(context.Background(), Query{
		Table:      "deleted_contacts",
		Projection: []string{"contact_id", "contact_deleted_timestamp"},
	})
	require.NoError(t, err)
	defer rows.Close()

	assert.Equal(t, []string{"contact_id"}, rows.Columns())
	_, err = Resolve("deleted_contacts", rows, "contact_id", "contact_deleted_timestamp")
	require.Error(t, err)
	assert.True(t, errorx.IsSchemaMismatch(err))
}

func TestGormSourceMissingTable(t *testing.T) {
	db := openTestDB(t)

	src := NewGormSource(db)
	rows, err := src.Scan(context.Background(), Query{
		Table:      "groups",
		Projection: []string{"_id", "title"},
	})
	require.NoError(t, err)
	assert.Empty(t, rows.Columns())
	assert.False(t, rows.Next())

	_, err = Resolve("groups", rows, "_id")
	assert.True(t, errorx.IsSchemaMismatch(err))
}

func TestProjectionNulls(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create(&model.Contact{ID: 7, LookupKey: "k7", Starred: 1}).Error)

	src := NewGormSource(db)
	rows, err := src.Scan(context.Background(), Query{
		Table:      "contacts",
		Projection: []string{"_id", "display_name", "starred", "lookup"},
	})
	require.NoError(t, err)
	defer rows.Close()

	p, err := Resolve("contacts", rows, "lookup", "_id", "display_name", "starred")
	require.NoError(t, err)
	require.True(t, p.Next())

	assert.Equal(t, "k7", p.String(0))
	assert.Equal(t, int64(7), p.Long(1))
	assert.True(t, p.IsNull(2))
	assert.Equal(t, "", p.String(2))
	_, ok := p.NullString(2)
	assert.False(t, ok)
	assert.Equal(t, 1, p.Int(3))

	assert.False(t, p.Next())
	assert.NoError(t, p.Err())
}
