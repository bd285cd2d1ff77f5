// Package database 负责建立联系人数据源的 GORM 连接和表结构迁移
package database

import (
	"fmt"

	"kama_contact_sync/internal/config" // 配置管理
	"kama_contact_sync/internal/model"  // 数据模型

	"github.com/glebarez/sqlite"       // 纯 Go 实现的 SQLite 驱动
	mysqldriver "gorm.io/driver/mysql" // GORM MySQL 驱动
	"gorm.io/gorm"                     // GORM ORM 框架
)

// Open 根据配置打开数据库连接
// driver=mysql 时连接 MySQL，driver=sqlite 时打开本地文件
func Open(conf config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case "mysql":
		// 格式：user:password@tcp(host:port)/database?params
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.DatabaseName,
		)
		dialector = mysqldriver.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: NewZapLogger()})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", conf.Driver, err)
	}

	if conf.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	return db, nil
}

// Migrate 创建或更新联系人数据源的表结构
// 注意：不会删除已有字段或数据
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close 关闭底层连接
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
