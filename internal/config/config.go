package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole = "console"
	ModeServer  = "server"

	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Mode       string        `yaml:"mode" env:"TICTACTOE_MODE" env-default:"console"`
	Searcher   string        `yaml:"searcher" env:"TICTACTOE_SEARCHER" env-default:"exhaustive"`
	HTTPPort   string        `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	SocketPort string        `yaml:"socket-port" env:"TICTACTOE_SOCKET_PORT" env-default:"9091"`
	Storage    string        `yaml:"storage" env:"TICTACTOE_STORAGE" env-default:"redis"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"TICTACTOE_SESSION_TTL" env-default:"1h"`
	Redis      Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Mode {
	case ModeConsole, ModeServer:
	default:
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
