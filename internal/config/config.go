package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/swipedeck/internal/deck"
)

// Config holds application configuration.
type Config struct {
	// Path is the config file Load read, or would have read.
	Path     string         `mapstructure:"-"`
	DeckFile string         `mapstructure:"deck_file"`
	Deck     DeckConfig     `mapstructure:"deck" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui" validate:"required"`
}

// DeckConfig holds swipe tuning, in terminal cells.
type DeckConfig struct {
	RotationRatio             float64       `mapstructure:"rotation_ratio" validate:"gte=0"`
	SwipeThreshold            float64       `mapstructure:"swipe_threshold" validate:"gt=0"`
	AnimationDuration         time.Duration `mapstructure:"animation_duration" validate:"gt=0"`
	MaxCardScale              float64       `mapstructure:"max_card_scale" validate:"gte=1"`
	ScaleAdjustmentFactor     float64       `mapstructure:"scale_adjustment_factor" validate:"gte=0"`
	ShadowRadiusScalingFactor float64       `mapstructure:"shadow_radius_scaling_factor" validate:"gte=0"`
}

// DatabaseConfig holds sqlite settings. An empty path disables the journal.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds the log file sink. An empty path discards logs.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"gt=0"`
	DragStep      float64       `mapstructure:"drag_step" validate:"gt=0"`
	// RowAspect converts terminal rows to column-sized distance units.
	RowAspect  float64 `mapstructure:"row_aspect" validate:"gt=0"`
	CardWidth  int     `mapstructure:"card_width" validate:"gte=16"`
	CardHeight int     `mapstructure:"card_height" validate:"gte=5"`
}

// Params converts the section into the controller's parameter set.
func (d DeckConfig) Params() deck.Config {
	return deck.Config{
		RotationRatio:             d.RotationRatio,
		SwipeThreshold:            d.SwipeThreshold,
		AnimationDuration:         d.AnimationDuration,
		MaxCardScale:              d.MaxCardScale,
		ScaleAdjustmentFactor:     d.ScaleAdjustmentFactor,
		ShadowRadiusScalingFactor: d.ShadowRadiusScalingFactor,
	}
}

var validate = validator.New()

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("swipedeck", pflag.ContinueOnError)
	fs.String("config", "", "path to config.toml")
	fs.String("deck", "", "deck file (.yaml, .yml or .json)")
	fs.String("db", "", "decision journal sqlite path")
	return fs
}

func defaultDir(parts ...string) string {
	return filepath.Join(append([]string{os.Getenv("HOME")}, parts...)...)
}

func defaultConfigPath() string {
	return defaultDir(".config", "swipedeck", "config.toml")
}

// Load reads configuration from flags, file and env. Env var overrides use
// prefix SWIPEDECK_. A .env file (or $ENV_FILE) is loaded first if present.
func Load(flags *pflag.FlagSet) (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	v := viper.New()

	// default values
	v.SetDefault("deck_file", "")
	v.SetDefault("deck.rotation_ratio", 0.6)
	v.SetDefault("deck.swipe_threshold", 14.0)
	v.SetDefault("deck.animation_duration", "220ms")
	v.SetDefault("deck.max_card_scale", 1.15)
	v.SetDefault("deck.scale_adjustment_factor", 0.006)
	v.SetDefault("deck.shadow_radius_scaling_factor", 0.12)
	v.SetDefault("database.path", defaultDir(".local", "share", "swipedeck", "journal.db"))
	v.SetDefault("log.path", defaultDir(".local", "state", "swipedeck", "swipedeck.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.frame_interval", "33ms")
	v.SetDefault("ui.drag_step", 4.0)
	v.SetDefault("ui.row_aspect", 2.0)
	v.SetDefault("ui.card_width", 38)
	v.SetDefault("ui.card_height", 11)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SWIPEDECK_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
		if f := flags.Lookup("deck"); f != nil {
			if err := v.BindPFlag("deck_file", f); err != nil {
				return Config{}, fmt.Errorf("bind deck flag: %w", err)
			}
		}
		if f := flags.Lookup("db"); f != nil {
			if err := v.BindPFlag("database.path", f); err != nil {
				return Config{}, fmt.Errorf("bind db flag: %w", err)
			}
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultDir(".config", "swipedeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWIPEDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Path = v.ConfigFileUsed()
	if c.Path == "" {
		c.Path = defaultConfigPath()
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// SaveDeckFile records cfg.DeckFile in the config file at cfg.Path,
// keeping whatever else that file holds. Values that came from env or flags
// are not written.
func SaveDeckFile(cfg Config) error {
	path := cfg.Path
	if path == "" {
		path = defaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("deck_file", cfg.DeckFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
