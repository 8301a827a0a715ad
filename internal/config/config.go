package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Game       Game    `yaml:"game"`
	Scoring    Scoring `yaml:"scoring"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the pacing of computer moves and the per-turn countdown.
type Game struct {
	ComputerDelay   time.Duration `yaml:"computer-delay" env:"GAME_COMPUTER_DELAY" env-default:"200ms"`
	TurnTimeout     time.Duration `yaml:"turn-timeout" env:"GAME_TURN_TIMEOUT" env-default:"3s"`
	AISeed          int64         `yaml:"ai-seed" env:"GAME_AI_SEED" env-default:"0"`
	LeaderboardSize int64         `yaml:"leaderboard-size" env:"GAME_LEADERBOARD_SIZE" env-default:"10"`
}

// Scoring overrides the score table. One time cap applies to every difficulty.
type Scoring struct {
	TimeCap    time.Duration `yaml:"time-cap" env:"SCORING_TIME_CAP" env-default:"120s"`
	EasyBase   int           `yaml:"easy-base" env:"SCORING_EASY_BASE" env-default:"500"`
	MediumBase int           `yaml:"medium-base" env:"SCORING_MEDIUM_BASE" env-default:"700"`
	HardBase   int           `yaml:"hard-base" env:"SCORING_HARD_BASE" env-default:"900"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yml file at path, then applies environment overrides.
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
