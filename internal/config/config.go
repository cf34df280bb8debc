package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppName string `mapstructure:"app_name"`

	Snapshot struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"snapshot"`

	Server struct {
		TCPPort  int    `mapstructure:"tcp_port"`
		HTTPAddr string `mapstructure:"http_addr"`
	} `mapstructure:"server"`

	HTTP struct {
		AllowOrigins []string `mapstructure:"allow_origins"`
		PasswordSalt string   `mapstructure:"password_salt"`
	} `mapstructure:"http"`

	Logging struct {
		SeqURL string `mapstructure:"seq_url"`
	} `mapstructure:"logging"`
}

// Load reads the YAML config at path. An empty path returns the
// defaults, so the binary runs without any config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("app_name", "rdbms")
	v.SetDefault("snapshot.path", "memory.json")
	v.SetDefault("server.tcp_port", 5432)
	v.SetDefault("server.http_addr", ":8000")
	v.SetDefault("http.allow_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("http.password_salt", "mini_rdbms_salt_2024")
	v.SetDefault("logging.seq_url", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
