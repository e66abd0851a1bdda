// Package config layers host settings: defaults, then an optional YAML
// file, then FIREWALL_ environment variables, then explicit flags.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds host settings only. Engine tuning is compiled in.
type Config struct {
	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`

	// Database is the sqlite file holding run history.
	Database string `koanf:"database"`

	// Track is an optional mp3 or ogg started with the session.
	Track string `koanf:"track"`

	// BeatMap replaces the compiled-in beat map.
	BeatMap string `koanf:"beatmap"`

	ReducedMotion bool          `koanf:"reduced_motion"`
	Mute          bool          `koanf:"mute"`
	FramePeriod   time.Duration `koanf:"frame_period"`
	StartDelay    time.Duration `koanf:"start_delay"`
	HistoryLimit  int           `koanf:"history_limit"`

	// MetricsAddr serves /metrics when set.
	MetricsAddr string `koanf:"metrics_addr"`

	SSHAddr string `koanf:"ssh_addr"`
	HostKey string `koanf:"host_key"`
}

func New() *Config {
	return &Config{
		LogLevel:     "info",
		LogFile:      "firewall.log",
		Database:     "firewall.db",
		FramePeriod:  time.Second / 60,
		HistoryLimit: 10,
		SSHAddr:      "localhost:23234",
		HostKey:      ".ssh/firewall_ed25519",
	}
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); nil != err {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	switch {
	case c.FramePeriod <= 0:
		return fmt.Errorf("frame period %v: %w", c.FramePeriod, ErrInvalidConfig)
	case c.StartDelay < 0:
		return fmt.Errorf("start delay %v: %w", c.StartDelay, ErrInvalidConfig)
	case c.HistoryLimit < 1:
		return fmt.Errorf("history limit %d: %w", c.HistoryLimit, ErrInvalidConfig)
	case c.Database == "":
		return fmt.Errorf("database must not be empty: %w", ErrInvalidConfig)
	}
	return nil
}
