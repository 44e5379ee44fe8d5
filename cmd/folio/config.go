package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/heyojules/folio/internal/hero"
	"github.com/heyojules/folio/internal/model"
	"github.com/heyojules/folio/internal/tui"
)

const (
	defaultScrollThreshold = 1 // lines, about 24px
	defaultHeaderOffset    = 1 // lines kept above an anchor target
	defaultStartPage       = tui.PageHome
)

// heroConfig mirrors hero.Config for the config file.
type heroConfig struct {
	MaxConcurrent   int           `mapstructure:"max-concurrent"`
	TypingSpeed     time.Duration `mapstructure:"typing-speed"`
	VisibleDuration time.Duration `mapstructure:"visible-duration"`
	FadeDuration    time.Duration `mapstructure:"fade-duration"`
	InitialSpawns   int           `mapstructure:"initial-spawns"`
	InitialInterval time.Duration `mapstructure:"initial-interval"`
	SpawnDelayMin   time.Duration `mapstructure:"spawn-delay-min"`
	SpawnDelayMax   time.Duration `mapstructure:"spawn-delay-max"`
	MinDistance     float64       `mapstructure:"min-distance"`
	Seed            uint64        `mapstructure:"seed"` // 0 = random
}

// appConfig is the CLI runtime configuration.
type appConfig struct {
	ReducedMotion   bool       `mapstructure:"reduced-motion"`
	Skin            string     `mapstructure:"skin"`
	SiteFile        string     `mapstructure:"site-file"`
	StartPage       string     `mapstructure:"start-page"`
	LogFile         string     `mapstructure:"log-file"`
	ScrollThreshold int        `mapstructure:"scroll-threshold"`
	HeaderOffset    int        `mapstructure:"header-offset"`
	Hero            heroConfig `mapstructure:"hero"`
	ConfigDir       string     `mapstructure:"-"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	// A local .env feeds the FOLIO_* environment below.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("reduced-motion", false)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("site-file", "")
	v.SetDefault("start-page", defaultStartPage)
	v.SetDefault("log-file", "")
	v.SetDefault("scroll-threshold", defaultScrollThreshold)
	v.SetDefault("header-offset", defaultHeaderOffset)

	v.SetDefault("hero.max-concurrent", model.DefaultMaxConcurrent)
	v.SetDefault("hero.typing-speed", model.DefaultTypingSpeed)
	v.SetDefault("hero.visible-duration", model.DefaultVisibleDuration)
	v.SetDefault("hero.fade-duration", model.DefaultFadeDuration)
	v.SetDefault("hero.initial-spawns", model.DefaultInitialSpawns)
	v.SetDefault("hero.initial-interval", model.DefaultInitialInterval)
	v.SetDefault("hero.spawn-delay-min", model.DefaultSpawnDelayMin)
	v.SetDefault("hero.spawn-delay-max", model.DefaultSpawnDelayMax)
	v.SetDefault("hero.min-distance", model.DefaultMinDistance)
	v.SetDefault("hero.seed", 0)

	configDir := filepath.Join(home, ".config", "folio")
	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigDir = configDir

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	h := c.Hero
	switch {
	case h.MaxConcurrent < 1:
		return fmt.Errorf("hero.max-concurrent must be at least 1, got %d", h.MaxConcurrent)
	case h.TypingSpeed < 0 || h.VisibleDuration < 0 || h.FadeDuration < 0:
		return errors.New("hero durations must not be negative")
	case h.SpawnDelayMax < h.SpawnDelayMin:
		return fmt.Errorf("hero.spawn-delay-max (%s) is below spawn-delay-min (%s)", h.SpawnDelayMax, h.SpawnDelayMin)
	case c.StartPage != tui.PageHome && c.StartPage != tui.PageWork:
		return fmt.Errorf("unknown start-page %q", c.StartPage)
	}
	return nil
}

// heroSettings converts the file shape into the pool configuration.
func (c appConfig) heroSettings() hero.Config {
	hc := hero.DefaultConfig()
	hc.MaxConcurrent = c.Hero.MaxConcurrent
	hc.TypingSpeed = c.Hero.TypingSpeed
	hc.VisibleDuration = c.Hero.VisibleDuration
	hc.FadeDuration = c.Hero.FadeDuration
	hc.InitialSpawns = c.Hero.InitialSpawns
	hc.InitialInterval = c.Hero.InitialInterval
	hc.SpawnDelayMin = c.Hero.SpawnDelayMin
	hc.SpawnDelayMax = c.Hero.SpawnDelayMax
	hc.Placement.MinDistance = c.Hero.MinDistance
	hc.ReducedMotion = c.ReducedMotion
	return hc
}

func (c appConfig) pageOptions() tui.Options {
	return tui.Options{
		ReducedMotion:   c.ReducedMotion,
		ScrollThreshold: c.ScrollThreshold,
		HeaderOffset:    c.HeaderOffset,
	}
}
