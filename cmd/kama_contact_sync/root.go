package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/internal/dao/database"
	"kama_contact_sync/internal/dao/source"
	"kama_contact_sync/internal/infrastructure/logger"
	"kama_contact_sync/internal/service/contacts"
	"kama_contact_sync/pkg/util/snowflake"
)

// app 各子命令共享的运行时依赖
type app struct {
	configPath string
	conf       *config.Config
	db         *gorm.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "kama_contact_sync",
		Short:         "Aggregate contacts provider tables into composite contact records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config.toml (default: search configs/)")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newDeletedCmd(a),
		newMigrateCmd(a),
		newTokenCmd(a),
	)
	return root
}

// loadConfig 加载配置并初始化日志
func (a *app) loadConfig() error {
	var loadErr error
	if a.configPath != "" {
		conf, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		a.conf = conf
	} else {
		a.conf = config.GetConfig()
		loadErr = config.LoadErr()
		if err := a.conf.Validate(); err != nil {
			return err
		}
	}
	if err := logger.Init(&a.conf.LogConfig, a.conf.MainConfig.Mode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if loadErr != nil {
		if errors.Is(loadErr, config.ErrConfigNotFound) {
			zap.L().Info("no config file found, using defaults")
		} else {
			zap.L().Warn("config file invalid, using defaults", zap.Error(loadErr))
		}
	}
	snowflake.Init(a.conf.SnowflakeConfig.MachineID)
	return nil
}

// openDB 打开数据源连接，多次调用复用同一连接
func (a *app) openDB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Open(a.conf.DatabaseConfig)
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connected",
		zap.String("driver", a.conf.DatabaseConfig.Driver),
	)
	a.db = db
	return db, nil
}

// aggregator 基于当前数据源创建聚合器
func (a *app) aggregator() (*contacts.Aggregator, error) {
	db, err := a.openDB()
	if err != nil {
		return nil, err
	}
	return contacts.NewAggregator(
		source.NewGormSource(db),
		contacts.WithParallelFetch(a.conf.AggregateConfig.ParallelFetch),
	), nil
}

func (a *app) close() {
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			zap.L().Warn("close database", zap.Error(err))
		}
		a.db = nil
	}
	_ = zap.L().Sync()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
