// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库

	"kama_contact_sync/pkg/enum/field_type_enum"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName     string `toml:"appName"`     // 应用名称，用于日志标识等
	Host        string `toml:"host"`        // 服务器监听地址，如 "0.0.0.0"
	Port        int    `toml:"port"`        // 服务器监听端口，如 8000
	Mode        string `toml:"mode"`        // 运行模式："dev" 或 "release"
	SSLRedirect bool   `toml:"sslRedirect"` // 是否将 HTTP 请求重定向到 HTTPS
}

// DatabaseConfig 联系人数据源连接配置
type DatabaseConfig struct {
	Driver       string `toml:"driver"`       // 驱动："mysql" 或 "sqlite"
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
	SqlitePath   string `toml:"sqlitePath"`   // sqlite 文件路径（driver=sqlite 时使用）
	MaxOpenConns int    `toml:"maxOpenConns"` // 连接池最大连接数
}

// RedisConfig Redis 连接配置，用于保存客户端同步水位
type RedisConfig struct {
	Host      string `toml:"host"`      // Redis 服务器地址
	Port      int    `toml:"port"`      // Redis 端口，默认 6379
	Password  string `toml:"password"`  // Redis 密码，无密码留空
	Db        int    `toml:"db"`        // Redis 数据库编号，默认 0
	KeyPrefix string `toml:"keyPrefix"` // 水位键前缀
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig Kafka 快照导出配置
type KafkaConfig struct {
	Enabled       bool          `toml:"enabled"`       // 是否启用导出
	HostPort      string        `toml:"hostPort"`      // Kafka 服务器地址，如 "localhost:9092"
	SnapshotTopic string        `toml:"snapshotTopic"` // 联系人快照主题
	DeletionTopic string        `toml:"deletionTopic"` // 删除记录主题
	Partition     int           `toml:"partition"`     // 分区数（创建主题时使用）
	Timeout       time.Duration `toml:"timeout"`       // 写超时（秒）
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret            string `toml:"secret"`            // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry int    `toml:"accessTokenExpiry"` // Access Token 有效期（分钟）
}

// AggregateConfig 聚合默认参数，请求未指定时使用
type AggregateConfig struct {
	EnabledFields []string `toml:"enabledFields"` // 默认启用的属性类别
	SortOrder     string   `toml:"sortOrder"`     // 默认排序，如 "display_name ASC"
	ParallelFetch bool     `toml:"parallelFetch"` // 是否并行查询各属性类别
}

// SnowflakeConfig 雪花算法配置，用于生成快照 ID
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"` // 节点 ID，范围 0-1023，多实例部署时需唯一
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig      `toml:"mainConfig"`      // 主配置
	DatabaseConfig  `toml:"databaseConfig"`  // 数据源配置
	RedisConfig     `toml:"redisConfig"`     // Redis 配置
	LogConfig       `toml:"logConfig"`       // 日志配置
	KafkaConfig     `toml:"kafkaConfig"`     // Kafka 配置
	JWTConfig       `toml:"jwtConfig"`       // JWT 配置
	AggregateConfig `toml:"aggregateConfig"` // 聚合配置
	SnowflakeConfig `toml:"snowflakeConfig"` // 雪花算法配置
}

// config 全局配置单例，延迟加载
var config *Config

// loadErr GetConfig 首次加载配置文件时的错误
var loadErr error

// ErrConfigNotFound 候选路径中没有任何配置文件
var ErrConfigNotFound = errors.New("could not find configuration file in any of the search paths")

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml",
	"../../configs/config.toml",
}

// LoadConfig 按顺序查找候选路径，加载第一个存在的配置文件
// 文件存在但解析或校验失败时直接返回错误，不再尝试后续路径
func LoadConfig() (*Config, error) {
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return nil, ErrConfigNotFound
}

// LoadFile 从指定路径加载配置并替换全局实例
// 供命令行 --config 参数使用
func LoadFile(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	config = conf
	return conf, nil
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，失败时使用默认值，错误通过 LoadErr 获取
func GetConfig() *Config {
	if config == nil {
		if _, loadErr = LoadConfig(); loadErr != nil {
			config = Default()
		}
	}
	return config
}

// LoadErr 返回 GetConfig 首次加载时的错误，成功时为 nil
func LoadErr() error {
	return loadErr
}

// Default 返回带默认值的配置
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "kama_contact_sync",
			Host:    "0.0.0.0",
			Port:    8000,
			Mode:    "dev",
		},
		DatabaseConfig: DatabaseConfig{
			Driver:     "sqlite",
			SqlitePath: "contacts.db",
		},
		RedisConfig: RedisConfig{
			Host:      "127.0.0.1",
			Port:      6379,
			KeyPrefix: "contact_sync:watermark:",
		},
		LogConfig: LogConfig{
			LogPath: "logs",
			Level:   "info",
		},
		KafkaConfig: KafkaConfig{
			SnapshotTopic: "contact_snapshot",
			DeletionTopic: "contact_deleted",
			Partition:     1,
			Timeout:       5,
		},
		JWTConfig: JWTConfig{
			AccessTokenExpiry: 60,
		},
		AggregateConfig: AggregateConfig{
			EnabledFields: fieldNames(field_type_enum.All),
			SortOrder:     "display_name ASC",
		},
		SnowflakeConfig: SnowflakeConfig{
			MachineID: 1,
		},
	}
}

// Validate 校验配置中需要提前发现的错误
func (c *Config) Validate() error {
	switch c.DatabaseConfig.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseConfig.Driver)
	}
	if _, err := field_type_enum.ParseList(c.AggregateConfig.EnabledFields); err != nil {
		return fmt.Errorf("aggregateConfig.enabledFields: %w", err)
	}
	return nil
}

func fieldNames(fields []field_type_enum.FieldType) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
