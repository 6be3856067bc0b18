package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-variants/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-variants/internal/board"
	"github.com/rocketscienceinc/tictactoe-variants/internal/decay"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
	"github.com/rocketscienceinc/tictactoe-variants/internal/quixo"
	"github.com/rocketscienceinc/tictactoe-variants/internal/ultimate"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis      Redis      `yaml:"redis"`
	Game       Game       `yaml:"game"`
	Simulation Simulation `yaml:"simulation"`
}

type Redis struct {
	// Enabled switches session storage from process memory to redis.
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Game holds the defaults applied to every new session.
type Game struct {
	Lifespan       int    `yaml:"lifespan" env:"GAME_LIFESPAN" env-default:"4"`
	StartingPlayer string `yaml:"starting-player" env:"GAME_STARTING_PLAYER" env-default:"X"`
	GridSize       int    `yaml:"grid-size" env:"GAME_GRID_SIZE" env-default:"3"`
	QuixoMaxTurns  int    `yaml:"quixo-max-turns" env:"GAME_QUIXO_MAX_TURNS" env-default:"0"`
}

type Simulation struct {
	Games   int    `yaml:"games" env:"SIMULATION_GAMES" env-default:"10"`
	Variant string `yaml:"variant" env:"SIMULATION_VARIANT" env-default:"classic"`

	// MaxMoves abandons a game that runs longer, as short decay lifespans never
	// produce a winner.
	MaxMoves int   `yaml:"max-moves" env:"SIMULATION_MAX_MOVES" env-default:"500"`
	Seed     int64 `yaml:"seed" env:"SIMULATION_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the config file at path, or only the environment when the file
// does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := that.Game.Validate(); err != nil {
		return fmt.Errorf("invalid game section: %w", err)
	}

	if err := that.Simulation.Validate(); err != nil {
		return fmt.Errorf("invalid simulation section: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that Game) Validate() error {
	if err := (decay.Config{Lifespan: that.Lifespan}).Validate(); err != nil {
		return err
	}

	if err := (ultimate.Config{GridSize: that.GridSize}).Validate(); err != nil {
		return err
	}

	if err := (quixo.Config{MaxTurns: that.QuixoMaxTurns}).Validate(); err != nil {
		return err
	}

	switch board.Starter(that.StartingPlayer) {
	case "", board.StartFirst, board.StartSecond, board.StartRandom:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownStarter, that.StartingPlayer)
	}
}

// Options turns the defaults into session options for the given mode.
func (that Game) Options(mode game.Mode) game.Options {
	return game.Options{
		Mode:     mode,
		Starter:  board.Starter(that.StartingPlayer),
		Lifespan: that.Lifespan,
		GridSize: that.GridSize,
		MaxTurns: that.QuixoMaxTurns,
	}
}

func (that Simulation) Validate() error {
	if _, err := game.ParseVariant(that.Variant); err != nil {
		return err
	}

	if that.Games < 0 || that.MaxMoves < 0 {
		return fmt.Errorf("%w: games and max moves must not be negative", apperror.ErrInvalidConfig)
	}

	return nil
}
