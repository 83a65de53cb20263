package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis    Redis    `yaml:"redis"`
	Analysis Analysis `yaml:"analysis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Analysis describes which tree to build and which position to advise on.
// Boards use the "OX./.X./..O" notation; an empty position means the start board.
type Analysis struct {
	StartBoard  string `yaml:"start-board" env:"ANALYSIS_START_BOARD" env-default:".../.../..."`
	FirstToMove string `yaml:"first-to-move" env:"ANALYSIS_FIRST_TO_MOVE" env-default:"O"`
	Position    string `yaml:"position" env:"ANALYSIS_POSITION" env-default:""`
	Favored     string `yaml:"favored" env:"ANALYSIS_FAVORED" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Analysis) GetPosition() string {
	if that.Position == "" {
		return that.StartBoard
	}

	return that.Position
}
