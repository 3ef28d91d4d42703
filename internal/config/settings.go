package config

import (
	"os"
	"path/filepath"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/maintain"
)

// timeLayout is the on-disk format of the last-maintenance timestamp.
const timeLayout = "2006-01-02 15:04:05"

// Settings holds the persisted application configuration, backed by
// ~/.config/healter/settings.json. Missing files yield the defaults.
type Settings struct {
	AutoMaintenanceEnabled bool    `mapstructure:"auto_maintenance_enabled"`
	LastMaintenanceDate    string  `mapstructure:"last_maintenance_date"`
	FrequencyDays          int     `mapstructure:"maintenance_frequency_days"`
	IdleThresholdMinutes   int     `mapstructure:"idle_threshold_minutes"`
	DiskThresholdEnabled   bool    `mapstructure:"disk_threshold_enabled"`
	DiskThresholdPercent   float64 `mapstructure:"disk_threshold_percent"`
	CheckACPower           bool    `mapstructure:"check_ac_power"`
	NotifyOnCompletion     bool    `mapstructure:"notify_on_completion"`

	v    *viper.Viper
	path string
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerr.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, ".config", "healter"), nil
}

// Load reads settings from the default location.
func Load() (*Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "settings.json"))
}

// LoadFrom reads settings from an explicit file path. A missing file is not
// an error; defaults apply.
func LoadFrom(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("auto_maintenance_enabled", false)
	v.SetDefault("last_maintenance_date", "")
	v.SetDefault("maintenance_frequency_days", 30)
	v.SetDefault("idle_threshold_minutes", 15)
	v.SetDefault("disk_threshold_enabled", false)
	v.SetDefault("disk_threshold_percent", 90.0)
	v.SetDefault("check_ac_power", true)
	v.SetDefault("notify_on_completion", false)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			var notFound viper.ConfigFileNotFoundError
			if !cerr.As(err, &notFound) {
				zap.L().Warn("settings file unreadable, using defaults",
					zap.String("path", path), zap.Error(err))
			}
		}
	}

	s := &Settings{v: v, path: path}
	if err := v.Unmarshal(s); err != nil {
		return nil, cerr.Wrap(err, "decoding settings")
	}
	return s, nil
}

// Save writes the settings back to disk, creating the directory if needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return cerr.Wrap(err, "creating config directory")
	}
	s.v.Set("auto_maintenance_enabled", s.AutoMaintenanceEnabled)
	s.v.Set("last_maintenance_date", s.LastMaintenanceDate)
	s.v.Set("maintenance_frequency_days", s.FrequencyDays)
	s.v.Set("idle_threshold_minutes", s.IdleThresholdMinutes)
	s.v.Set("disk_threshold_enabled", s.DiskThresholdEnabled)
	s.v.Set("disk_threshold_percent", s.DiskThresholdPercent)
	s.v.Set("check_ac_power", s.CheckACPower)
	s.v.Set("notify_on_completion", s.NotifyOnCompletion)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return cerr.Wrap(err, "writing settings")
	}
	return nil
}

// Policy converts the persisted settings into the scheduler's read-only
// policy view.
func (s *Settings) Policy() maintain.Policy {
	var lastRun time.Time
	if s.LastMaintenanceDate != "" {
		if t, err := time.ParseInLocation(timeLayout, s.LastMaintenanceDate, time.Local); err == nil {
			lastRun = t
		}
	}
	return maintain.Policy{
		Enabled:              s.AutoMaintenanceEnabled,
		RequireACPower:       s.CheckACPower,
		IdleThresholdSeconds: s.IdleThresholdMinutes * 60,
		DiskThresholdEnabled: s.DiskThresholdEnabled,
		DiskThresholdPercent: s.DiskThresholdPercent,
		IntervalDays:         s.FrequencyDays,
		LastRun:              lastRun,
	}
}

// SetLastRun records the completion time of a maintenance run and persists
// it. The settings layer is the only writer of this field.
func (s *Settings) SetLastRun(t time.Time) error {
	s.LastMaintenanceDate = t.Format(timeLayout)
	return s.Save()
}
