package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"TTT_SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Engine     Engine  `yaml:"engine"`
}

type Redis struct {
	Host string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

type Session struct {
	// TTL bounds how long an untouched session stays in storage.
	TTL time.Duration `yaml:"ttl" env:"TTT_SESSION_TTL" env-default:"1h"`
}

type Engine struct {
	// Seed fixes the bot's random source; 0 draws a fresh seed at startup.
	Seed uint64 `yaml:"seed" env:"TTT_ENGINE_SEED" env-default:"0"`
	// LegacyHard makes the hard tier pick random cells like the desktop game.
	LegacyHard bool `yaml:"legacy-hard" env:"TTT_ENGINE_LEGACY_HARD" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the YAML file at path; environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
