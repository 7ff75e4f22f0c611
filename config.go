package maitre

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/maitre/group"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration.
// The zero-value is not useful on its own - use DefaultConfig and adjust.
type Config struct {
	Restaurant RestaurantConfig `json:"restaurant" yaml:"restaurant"`
	Group      group.Config     `json:"group" yaml:"group"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// RestaurantConfig sizes the protocol population.
type RestaurantConfig struct {
	// Groups is the static number of client actors.
	Groups int `json:"groups" yaml:"groups"`

	// Tables is the number of exclusively-held resource units.
	Tables int `json:"tables" yaml:"tables"`

	// Slots is the request-slot pipeline depth; 1 keeps the classic
	// single-outstanding-request handshake.
	Slots int `json:"slots" yaml:"slots"`

	// Requests bounds the receptionist run; 0 means two per group.
	Requests int `json:"requests" yaml:"requests"`
}

// JournalConfig selects the snapshot journal backend.
type JournalConfig struct {
	// URL is the directory snapshots are written under; empty keeps the
	// in-memory journal.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// DefaultConfig returns the reference deployment sizing: three groups
// competing for two tables, classic one-slot handshake.
func DefaultConfig() *Config {
	return &Config{
		Restaurant: RestaurantConfig{
			Groups: 3,
			Tables: 2,
			Slots:  1,
		},
		Group: group.Config{
			ArrivalDelay: 0,
			EatDuration:  10 * time.Millisecond,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Restaurant.Groups <= 0 {
		return fmt.Errorf("restaurant.groups must be > 0")
	}
	if c.Restaurant.Tables <= 0 {
		return fmt.Errorf("restaurant.tables must be > 0")
	}
	if c.Restaurant.Slots < 0 {
		return fmt.Errorf("restaurant.slots must be >= 0")
	}
	if c.Group.ArrivalDelay < 0 || c.Group.EatDuration < 0 {
		return fmt.Errorf("group delays must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML configuration from the supplied URL (any scheme
// afs understands) on top of the defaults.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
