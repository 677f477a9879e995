package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// FileName is the per-directory config file
const FileName = ".petfarm.json"

// Config represents the full planner configuration
type Config struct {
	// CycleHours maps an NPC rank letter to its production time
	CycleHours map[string]float64 `json:"cycleHours"`
	Prices     PricesConfig       `json:"prices"`
	Schedule   ScheduleConfig     `json:"schedule"`
	State      StateConfig        `json:"state"`
	Log        LogConfig          `json:"log"`
	Alerts     AlertsConfig       `json:"alerts"`
}

// PricesConfig contains market prices
type PricesConfig struct {
	// Pets maps a rank letter to its unit sale price
	Pets         map[string]float64 `json:"pets"`
	NPCCost7Day  float64            `json:"npcCost7Day"`
	NPCCost15Day float64            `json:"npcCost15Day"`
}

// ScheduleConfig contains check-in settings
type ScheduleConfig struct {
	CheckinHours      []int `json:"checkinHours"`
	BlocksPerDivision int   `json:"blocksPerDivision"`
}

// StateConfig contains state file settings
type StateConfig struct {
	Path         string  `json:"path"`
	StartingCash float64 `json:"startingCash"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Dir   string `json:"dir"`
	Debug bool   `json:"debug"`
	JSON  bool   `json:"json"`
}

// AlertsConfig contains dashboard alert settings
type AlertsConfig struct {
	ExpiryWindowHours int `json:"expiryWindowHours"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	hours := make(map[string]float64, len(cycle.DefaultHours))
	for r, h := range cycle.DefaultHours {
		hours[r.String()] = h
	}
	prices := domain.DefaultPrices()
	pets := make(map[string]float64, len(prices.Pets))
	for r, p := range prices.Pets {
		pets[r.String()] = p
	}

	return &Config{
		CycleHours: hours,
		Prices: PricesConfig{
			Pets:         pets,
			NPCCost7Day:  prices.NPCCost7Day,
			NPCCost15Day: prices.NPCCost15Day,
		},
		Schedule: ScheduleConfig{
			CheckinHours:      append([]int(nil), domain.DefaultCheckinHours...),
			BlocksPerDivision: domain.DefaultBlocksPerDivision,
		},
		State: StateConfig{
			Path:         filepath.Join(homeDir, ".petfarm", "state.yaml"),
			StartingCash: 490_000_000,
		},
		Log: LogConfig{
			Dir: filepath.Join(homeDir, ".petfarm", "logs"),
		},
		Alerts: AlertsConfig{
			ExpiryWindowHours: 24,
		},
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. .petfarm.json in dir (with version migration support)
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Missing ranks keep their stock cycle
	if cfg.CycleHours == nil {
		cfg.CycleHours = make(map[string]float64)
	}
	for r, h := range defaults.CycleHours {
		if _, ok := cfg.CycleHours[r]; !ok {
			cfg.CycleHours[r] = h
		}
	}

	// Merge Prices config
	if cfg.Prices.Pets == nil {
		cfg.Prices.Pets = defaults.Prices.Pets
	}
	if cfg.Prices.NPCCost7Day == 0 {
		cfg.Prices.NPCCost7Day = defaults.Prices.NPCCost7Day
	}
	if cfg.Prices.NPCCost15Day == 0 {
		cfg.Prices.NPCCost15Day = defaults.Prices.NPCCost15Day
	}

	// Merge Schedule config
	if len(cfg.Schedule.CheckinHours) == 0 {
		cfg.Schedule.CheckinHours = defaults.Schedule.CheckinHours
	}
	if cfg.Schedule.BlocksPerDivision == 0 {
		cfg.Schedule.BlocksPerDivision = defaults.Schedule.BlocksPerDivision
	}

	// Merge State config
	if cfg.State.Path == "" {
		cfg.State.Path = defaults.State.Path
	}
	if cfg.State.StartingCash == 0 {
		cfg.State.StartingCash = defaults.State.StartingCash
	}

	// Merge Log config
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaults.Log.Dir
	}

	// Merge Alerts config
	if cfg.Alerts.ExpiryWindowHours == 0 {
		cfg.Alerts.ExpiryWindowHours = defaults.Alerts.ExpiryWindowHours
	}

	return cfg
}

// Validate converts every domain section once and reports the first invalid field
func (c *Config) Validate() error {
	if _, err := c.CycleTable(); err != nil {
		return err
	}
	if _, err := c.PriceConfig(); err != nil {
		return err
	}
	if _, err := c.Checkins(); err != nil {
		return err
	}
	if c.Schedule.BlocksPerDivision < 1 {
		return &domain.ConfigError{Field: "schedule.blocksPerDivision", Err: fmt.Errorf("%w: must be at least 1", domain.ErrInvalidArgument)}
	}
	return nil
}

// CycleTable builds the cycle table. Unknown rank letters, S included, are
// an invalid configuration.
func (c *Config) CycleTable() (cycle.Table, error) {
	hours := make(map[domain.Rank]float64, len(c.CycleHours))
	for key, h := range c.CycleHours {
		r, err := domain.ParseRank(key)
		if err != nil || !r.IsNPC() {
			return cycle.Table{}, &domain.ConfigError{Field: "cycleHours." + key, Err: domain.ErrUnknownRank}
		}
		hours[r] = h
	}
	t, err := cycle.New(hours)
	if err != nil {
		return cycle.Table{}, &domain.ConfigError{Field: "cycleHours", Err: err}
	}
	return t, nil
}

// PriceConfig converts the prices section
func (c *Config) PriceConfig() (domain.PriceConfig, error) {
	pets := make(map[domain.Rank]float64, len(c.Prices.Pets))
	for key, p := range c.Prices.Pets {
		r, err := domain.ParseRank(key)
		if err != nil || !r.Valid() {
			return domain.PriceConfig{}, &domain.ConfigError{Field: "prices.pets." + key, Err: domain.ErrUnknownRank}
		}
		if p < 0 {
			return domain.PriceConfig{}, &domain.ConfigError{Field: "prices.pets." + key, Err: fmt.Errorf("%w: negative price", domain.ErrInvalidArgument)}
		}
		pets[r] = p
	}
	return domain.PriceConfig{
		Pets:         pets,
		NPCCost7Day:  c.Prices.NPCCost7Day,
		NPCCost15Day: c.Prices.NPCCost15Day,
	}, nil
}

// Checkins returns the default check-in schedule
func (c *Config) Checkins() (domain.Schedule, error) {
	s, err := domain.NewSchedule(c.Schedule.CheckinHours...)
	if err != nil {
		return nil, &domain.ConfigError{Field: "schedule.checkinHours", Err: err}
	}
	return s, nil
}

// ExpiryWindow is how far ahead NPC expirations are flagged
func (c *Config) ExpiryWindow() time.Duration {
	return time.Duration(c.Alerts.ExpiryWindowHours) * time.Hour
}

// String renders the config as indented JSON
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
