package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	Delays   Delays `yaml:"delays"`
	Redis    Redis  `yaml:"redis"`
}

// Delays before the computer plays, in milliseconds.
type Delays struct {
	HumanMoveMs        int `yaml:"human-move-ms" env:"DELAY_HUMAN_MOVE_MS" env-default:"2000"`
	RestartFirstMoveMs int `yaml:"restart-first-move-ms" env:"DELAY_RESTART_FIRST_MOVE_MS" env-default:"1000"`
}

type Redis struct {
	Enabled      bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host         string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	RewardKey    string `yaml:"reward-key" env:"REDIS_REWARD_KEY" env-default:"rewards:default"`
	GamePrefix   string `yaml:"game-prefix" env:"REDIS_GAME_PREFIX" env-default:"games:"`
	GameTTLHours int    `yaml:"game-ttl-hours" env:"REDIS_GAME_TTL_HOURS" env-default:"168"`
	TimeoutMs    int    `yaml:"timeout-ms" env:"REDIS_TIMEOUT_MS" env-default:"2000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadFromEnv builds the config from defaults and environment only.
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Delays) HumanMove() time.Duration {
	return time.Duration(that.HumanMoveMs) * time.Millisecond
}

func (that *Delays) RestartFirstMove() time.Duration {
	return time.Duration(that.RestartFirstMoveMs) * time.Millisecond
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameTTL is how long archived games are kept. Zero keeps them forever.
func (that *Redis) GameTTL() time.Duration {
	return time.Duration(that.GameTTLHours) * time.Hour
}

func (that *Redis) Timeout() time.Duration {
	return time.Duration(that.TimeoutMs) * time.Millisecond
}
