package lib

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/top-system/light-news/pkg/file"
)

var configPath = "./config.yaml"

// EnvPrefix 环境变量前缀, 例如 NEWS_AUTH_SECRET 覆盖 Auth.Secret
const EnvPrefix = "NEWS"

var defaultConfig = Config{
	Name: "light-news",
	Http: &HttpConfig{
		Host:      "0.0.0.0",
		Port:      3000,
		RateLimit: 10,
		RateBurst: 20,
	},
	Log: &LogConfig{
		Level:  "info",
		Format: "console",
	},
	Auth: &AuthConfig{
		TokenExpired: 86400,
	},
	Captcha: &CaptchaConfig{Enable: false},
	Cache:   &CacheConfig{Type: "memory"},
	Database: &DatabaseConfig{
		Engine:       "mysql",
		Parameters:   "charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&timeout=5s",
		MaxLifetime:  7200,
		MaxOpenConns: 150,
		MaxIdleConns: 50,
		ConnectRetry: 5,
	},
	Crontab: &CrontabConfig{Enable: true},
	AuditLog: &AuditLogConfig{
		Enable:        true,
		RetentionDays: 30,
		PurgeSpec:     "0 30 3 * * *",
	},
}

func NewConfig() Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration file: %s\nError: %v\nPlease ensure the config file exists and is valid YAML format.", configPath, err))
	}

	return config
}

// LoadConfig reads path over the defaults and applies NEWS_* environment overrides.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return config, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return config, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}

	if err := validator.New().Struct(config.Auth); err != nil {
		return config, fmt.Errorf("Auth.Secret is required: %w", err)
	}

	return config, nil
}

var envKeys = []string{
	"Auth.Secret",
	"Database.Host",
	"Database.Port",
	"Database.Name",
	"Database.Username",
	"Database.Password",
	"Cache.Host",
	"Cache.Password",
}

// DefaultConfig returns a deep copy of the built-in defaults
func DefaultConfig() Config {
	config := defaultConfig
	http, log, auth, captcha := *defaultConfig.Http, *defaultConfig.Log, *defaultConfig.Auth, *defaultConfig.Captcha
	cache, database, crontab, auditLog := *defaultConfig.Cache, *defaultConfig.Database, *defaultConfig.Crontab, *defaultConfig.AuditLog

	config.Http, config.Log, config.Auth, config.Captcha = &http, &log, &auth, &captcha
	config.Cache, config.Database, config.Crontab, config.AuditLog = &cache, &database, &crontab, &auditLog
	return config
}

func SetConfigPath(path string) {
	if !file.IsFile(path) {
		panic(fmt.Sprintf("Configuration file not found: %s\nPlease create a config file or specify a valid path using the -c flag.\nExample: ./news runserver -c /path/to/config.yaml", path))
	}

	configPath = path
}

// Configuration are the available config values
type Config struct {
	Name     string          `mapstructure:"Name"`
	Http     *HttpConfig     `mapstructure:"Http"`
	Log      *LogConfig      `mapstructure:"Log"`
	Auth     *AuthConfig     `mapstructure:"Auth"`
	Captcha  *CaptchaConfig  `mapstructure:"Captcha"`
	Cache    *CacheConfig    `mapstructure:"Cache"`
	Database *DatabaseConfig `mapstructure:"Database"`
	Crontab  *CrontabConfig  `mapstructure:"Crontab"`
	AuditLog *AuditLogConfig `mapstructure:"AuditLog"`
}

type CaptchaConfig struct {
	Enable bool `mapstructure:"Enable"`
}

// RateLimit    : requests per second allowed per client IP, 0 disables limiting
// RateBurst    : burst size of the per-IP limiter
type HttpConfig struct {
	Host         string   `mapstructure:"Host" validate:"ipv4"`
	Port         int      `mapstructure:"Port" validate:"gte=1,lte=65535"`
	AllowOrigins []string `mapstructure:"AllowOrigins"`
	RateLimit    float64  `mapstructure:"RateLimit"`
	RateBurst    int      `mapstructure:"RateBurst"`
}

// LogLevel     : debug,info,warn,error,dpanic,panic,fatal
//                default info
// Format       : json, console
//                default console
// Directory    : Log storage path, empty means stdout only
type LogConfig struct {
	Level       string `mapstructure:"Level"`
	Format      string `mapstructure:"Format"`
	Directory   string `mapstructure:"Directory"`
	Development bool   `mapstructure:"Development"`
}

// Secret       : HMAC key used to sign and verify tokens
// TokenExpired : token lifetime in seconds
type AuthConfig struct {
	Secret       string `mapstructure:"Secret" validate:"required"`
	TokenExpired int    `mapstructure:"TokenExpired" validate:"gte=0"`
}

type DatabaseConfig struct {
	Engine      string `mapstructure:"Engine"` // mysql, sqlite, postgres
	Name        string `mapstructure:"Name"`
	Host        string `mapstructure:"Host"`
	Port        int    `mapstructure:"Port"`
	Username    string `mapstructure:"Username"`
	Password    string `mapstructure:"Password"`
	TablePrefix string `mapstructure:"TablePrefix"`
	Parameters  string `mapstructure:"Parameters"`
	AutoMigrate bool   `mapstructure:"AutoMigrate"`

	MaxLifetime  int `mapstructure:"MaxLifetime"`
	MaxOpenConns int `mapstructure:"MaxOpenConns"`
	MaxIdleConns int `mapstructure:"MaxIdleConns"`
	ConnectRetry int `mapstructure:"ConnectRetry"`
}

// IsSQLite returns true if the database engine is SQLite
func (a *DatabaseConfig) IsSQLite() bool {
	return a.Engine == "sqlite"
}

// IsMySQL returns true if the database engine is MySQL
func (a *DatabaseConfig) IsMySQL() bool {
	return a.Engine == "" || a.Engine == "mysql"
}

// IsPostgreSQL returns true if the database engine is PostgreSQL
func (a *DatabaseConfig) IsPostgreSQL() bool {
	return a.Engine == "postgres"
}

func (a *DatabaseConfig) DSN() string {
	if a.IsPostgreSQL() {
		return a.PostgresDSN()
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", a.Username, a.Password, a.Host, a.Port, a.Name, a.Parameters)
}

// PostgresDSN returns the PostgreSQL connection string
func (a *DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		a.Host, a.Port, a.Username, a.Password, a.Name)
}

// CacheConfig cache configuration
// Type: memory, redis
type CacheConfig struct {
	Type      string `mapstructure:"Type"` // memory or redis
	KeyPrefix string `mapstructure:"KeyPrefix"`

	// Redis specific settings (only used when Type is "redis")
	Host     string `mapstructure:"Host"`
	Port     int    `mapstructure:"Port"`
	Password string `mapstructure:"Password"`
}

// IsRedis returns true if cache type is Redis
func (c *CacheConfig) IsRedis() bool {
	return c.Type == "redis"
}

// IsMemory returns true if cache type is Memory (default)
func (c *CacheConfig) IsMemory() bool {
	return c.Type == "" || c.Type == "memory"
}

// Addr returns Redis address
func (c *CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (a *HttpConfig) ListenAddr() string {
	if err := validator.New().Struct(a); err != nil {
		return "0.0.0.0:3000"
	}

	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// CrontabConfig 定时任务配置
type CrontabConfig struct {
	Enable bool `mapstructure:"Enable"`
}

// AuditLogConfig 操作日志配置
// PurgeSpec uses the six-field cron format (with seconds)
type AuditLogConfig struct {
	Enable        bool   `mapstructure:"Enable"`
	RetentionDays int    `mapstructure:"RetentionDays"`
	PurgeSpec     string `mapstructure:"PurgeSpec"`
}
