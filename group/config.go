package group

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes durations from strings such as "25ms" so the
// engine configuration stays human-editable.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type raw struct {
		ArrivalDelay string `yaml:"arrivalDelay"`
		EatDuration  string `yaml:"eatDuration"`
	}
	aRaw := &raw{}
	if err := node.Decode(aRaw); err != nil {
		return err
	}
	var err error
	if c.ArrivalDelay, err = parseDuration(aRaw.ArrivalDelay); err != nil {
		return fmt.Errorf("invalid arrivalDelay: %w", err)
	}
	if c.EatDuration, err = parseDuration(aRaw.EatDuration); err != nil {
		return fmt.Errorf("invalid eatDuration: %w", err)
	}
	return nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}
