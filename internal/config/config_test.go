package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kama_contact_sync/pkg/enum/field_type_enum"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
port = 9090

[databaseConfig]
driver = "mysql"
host = "db.internal"
databaseName = "contacts"

[aggregateConfig]
enabledFields = ["phone_numbers", "EMAILS"]
sortOrder = "_id DESC"
parallelFetch = true
`)

	conf, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.MainConfig.Port)
	assert.Equal(t, "0.0.0.0", conf.MainConfig.Host)
	assert.Equal(t, "mysql", conf.DatabaseConfig.Driver)
	assert.Equal(t, "contacts", conf.DatabaseConfig.DatabaseName)
	assert.Equal(t, "_id DESC", conf.AggregateConfig.SortOrder)
	assert.True(t, conf.AggregateConfig.ParallelFetch)
	assert.Equal(t, []string{"phone_numbers", "EMAILS"}, conf.AggregateConfig.EnabledFields)
	assert.Same(t, conf, GetConfig())
}

func TestLoadFileRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, `
[aggregateConfig]
enabledFields = ["PHONE_NUMBERS", "FAX"]
`)
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidateRejectsDriver(t *testing.T) {
	conf := Default()
	conf.DatabaseConfig.Driver = "postgres"
	assert.Error(t, conf.Validate())
}

func TestDefaultEnablesEveryField(t *testing.T) {
	fields, err := field_type_enum.ParseList(Default().AggregateConfig.EnabledFields)
	require.NoError(t, err)
	assert.Equal(t, field_type_enum.All, fields)
}

// useSearchPaths 替换候选路径并清空全局配置，测试结束后恢复
func useSearchPaths(t *testing.T, paths ...string) {
	t.Helper()
	oldPaths, oldConfig, oldErr := searchPaths, config, loadErr
	searchPaths, config, loadErr = paths, nil, nil
	t.Cleanup(func() {
		searchPaths, config, loadErr = oldPaths, oldConfig, oldErr
	})
}

func TestGetConfigReportsMalformedFile(t *testing.T) {
	bad := writeConfig(t, `
[mainConfig]
port = 9090
host = 
`)
	good := writeConfig(t, `
[mainConfig]
port = 7070
`)
	useSearchPaths(t, filepath.Join(t.TempDir(), "missing.toml"), bad, good)

	conf := GetConfig()
	require.Error(t, LoadErr())
	assert.NotErrorIs(t, LoadErr(), ErrConfigNotFound)
	// 解析失败的文件不会部分生效，也不会退到后面的路径
	assert.Equal(t, 8000, conf.MainConfig.Port)
}

func TestGetConfigNoFile(t *testing.T) {
	useSearchPaths(t, filepath.Join(t.TempDir(), "missing.toml"))

	conf := GetConfig()
	assert.ErrorIs(t, LoadErr(), ErrConfigNotFound)
	assert.Equal(t, Default(), conf)
}

func TestGetConfigLoadsFirstExisting(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
port = 7070
`)
	useSearchPaths(t, filepath.Join(t.TempDir(), "missing.toml"), path)

	conf := GetConfig()
	require.NoError(t, LoadErr())
	assert.Equal(t, 7070, conf.MainConfig.Port)
}
