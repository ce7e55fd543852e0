package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取  需要使用讀寫鎖
*/
var configSingleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	Env                   constants.ENV `mapstructure:"ENV"`
	AppVersion            string        `mapstructure:"APP_VERSION"`
	HttpServerAddress     string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	DbHost                string        `mapstructure:"DB_HOST"`
	DbPort                string        `mapstructure:"DB_PORT"`
	DbUser                string        `mapstructure:"DB_USER"`
	DbPas                 string        `mapstructure:"DB_PASSWORD"`
	DbName                string        `mapstructure:"DB_NAME"`
	DbSSLMode             string        `mapstructure:"DB_SSL_MODE"`
	DbMaxOpenConns        int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DbMaxIdleConns        int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	SessionSecret         string        `mapstructure:"SESSION_SECRET"`
	SessionMaxAge         int           `mapstructure:"SESSION_MAX_AGE"`
	RateLimitCapacity     int           `mapstructure:"RATE_LIMIT_CAPACITY"`
	RateLimitRefillPerSec int           `mapstructure:"RATE_LIMIT_REFILL_PER_SEC"`
	CatalogSeedFile       string        `mapstructure:"CATALOG_SEED_FILE"`
}

// DbSource migrate 用的 url 格式
func (c *Config) DbSource() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.DbUser, c.DbPas, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode)
}

func (c *Config) SessionMaxAgeDuration() time.Duration {
	if c.SessionMaxAge <= 0 {
		return constants.DefaultSessionMaxAge
	}
	return time.Duration(c.SessionMaxAge) * time.Second
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	muonce.Do(func() {
		configSingleton = &ConfigSingleTon{}
		cf, watching, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("error read config")
		}
		configSingleton.Config = cf
		if !watching {
			return
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			cf, _, err := loadConfig()
			if err != nil {
				log.Error().Err(err).Str("file", e.Name).Msg("failed to reload config file")
				return
			}
			configSingleton.mu.Lock()
			configSingleton.Config = cf
			configSingleton.mu.Unlock()
			log.Info().Str("file", e.Name).Msg("config reloaded")
		})
	})
}

func setDefaults() {
	viper.SetDefault("ENV", string(constants.Dev))
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("HTTP_SERVER_ADDRESS", ":8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "bookshop")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_MAX_AGE", int(constants.DefaultSessionMaxAge.Seconds()))
	viper.SetDefault("RATE_LIMIT_CAPACITY", 10)
	viper.SetDefault("RATE_LIMIT_REFILL_PER_SEC", 1)
	viper.SetDefault("CATALOG_SEED_FILE", "")
}

/*
單純回傳錯誤  由外部決定要不要Fatal
.env 不存在時只讀環境變數, 也不會 watch
*/
func loadConfig() (cf *Config, watching bool, err error) {
	setDefaults()
	viper.AutomaticEnv()

	dir := os.Getenv("CONFIG_PATH")
	if dir == "" {
		dir = "."
	}
	file := filepath.Join(dir, ".env")
	if _, statErr := os.Stat(file); statErr == nil {
		viper.SetConfigFile(file)
		viper.SetConfigType("env")
		if err = viper.ReadInConfig(); err != nil {
			return nil, false, err
		}
		watching = true
	}

	cf = &Config{}
	if err = viper.Unmarshal(cf); err != nil {
		return nil, false, err
	}
	return cf, watching, nil
}
