package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address       string `mapstructure:"address"`
	Port          int    `mapstructure:"port"`
	Mode          string `mapstructure:"mode"`
	PublicURL     string `mapstructure:"public_url"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type UploadConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// Every option has a fallback default, so a missing file is not an error;
// environment variables prefixed with TASKLY_ override both.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		setDefaults(v)

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. TASKLY_SERVER_PORT=9000
		v.SetEnvPrefix("TASKLY")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if readErr := v.ReadInConfig(); readErr != nil {
			// run on defaults + env when no config file is present
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(readErr, &notFound) && !os.IsNotExist(readErr) {
				err = fmt.Errorf("read config: %w", readErr)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.public_url", "http://localhost:3000")
	v.SetDefault("server.allowed_origin", "http://localhost:5173")
	v.SetDefault("database.path", "data/taskly.db")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("jwt.secret", "your-fallback-secret-key")
	v.SetDefault("upload.dir", "data/uploads")
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
