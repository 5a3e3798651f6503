// Package config provides Viper-based configuration loading for the NPC tracker.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/npc-tracker/internal/repositories/kv"
	"github.com/KirkDiggler/npc-tracker/internal/repositories/library"
)

// EnvPrefix prefixes every environment override, e.g. NPC_STORAGE_BACKEND
const EnvPrefix = "NPC"

// StorageConfig selects and configures the durable store.
type StorageConfig struct {
	// Backend is "sqlite", "redis" or "memory".
	Backend string `mapstructure:"backend"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string      `mapstructure:"sqlite_path"`
	Redis      RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// KeysConfig names the storage keys.
type KeysConfig struct {
	Library  string `mapstructure:"library"`
	ActiveID string `mapstructure:"active_id"`
	Legacy   string `mapstructure:"legacy"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// IDsConfig selects the identifier scheme for new records.
type IDsConfig struct {
	// Scheme is "uuid" or "timestamp".
	Scheme string `mapstructure:"scheme"`
}

// Config is the top-level application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Keys    KeysConfig    `mapstructure:"keys"`
	Logging LoggingConfig `mapstructure:"logging"`
	IDs     IDsConfig     `mapstructure:"ids"`
}

// LibraryKeys converts the key settings for the library repository
func (k KeysConfig) LibraryKeys() library.Keys {
	return library.Keys{
		Library:  k.Library,
		ActiveID: k.ActiveID,
		Legacy:   k.Legacy,
	}
}

var (
	validBackends = []string{string(kv.BackendSQLite), string(kv.BackendRedis), string(kv.BackendInMemory)}
	validLevels   = []string{"debug", "info", "warn", "error"}
	validFormats  = []string{"json", "console"}
	validSchemes  = []string{string(idgen.SchemeUUID), string(idgen.SchemeTimestamp)}
)

// Validate checks every setting and reports all violations at once.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("storage.backend", c.Storage.Backend, validBackends, vb)
	switch kv.Backend(c.Storage.Backend) {
	case kv.BackendSQLite:
		errors.ValidateRequired("storage.sqlite_path", c.Storage.SQLitePath, vb)
	case kv.BackendRedis:
		errors.ValidateRequired("storage.redis.addr", c.Storage.Redis.Addr, vb)
		errors.ValidateAtLeast("storage.redis.db", c.Storage.Redis.DB, 0, vb)
		errors.ValidateAtLeast("storage.redis.dial_timeout", c.Storage.Redis.DialTimeout, 0, vb)
	}

	errors.ValidateRequired("keys.library", c.Keys.Library, vb)
	errors.ValidateRequired("keys.active_id", c.Keys.ActiveID, vb)
	errors.ValidateRequired("keys.legacy", c.Keys.Legacy, vb)
	errors.ValidateDistinct("keys.active_id", c.Keys.ActiveID, "keys.library", c.Keys.Library, vb)

	errors.ValidateEnum("logging.level", c.Logging.Level, validLevels, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, validFormats, vb)
	errors.ValidateEnum("ids.scheme", c.IDs.Scheme, validSchemes, vb)

	return vb.Build()
}

// Configure prepares v with defaults, NPC_ environment overrides and, when
// path is not empty, the YAML file at path.
func Configure(v *viper.Viper, path string) error {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path)
	}
	return nil
}

// Load reads configuration from defaults, the environment and the optional
// file at path, then validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	if err := Configure(v, path); err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to unmarshal config")
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var defaults = map[string]any{
	"storage.backend":            string(kv.BackendSQLite),
	"storage.sqlite_path":        "npc-tracker.db",
	"storage.redis.addr":         "localhost:6379",
	"storage.redis.password":     "",
	"storage.redis.db":           0,
	"storage.redis.key_prefix":   "",
	"storage.redis.dial_timeout": "5s",
	"keys.library":               library.DefaultLibraryKey,
	"keys.active_id":             library.DefaultActiveIDKey,
	"keys.legacy":                library.DefaultLegacyKey,
	"logging.level":              "warn",
	"logging.format":             "console",
	"ids.scheme":                 string(idgen.SchemeUUID),
}

func setDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}
