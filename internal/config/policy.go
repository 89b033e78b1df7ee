package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ReminderPolicy lists the sweeps the reminder worker runs.
type ReminderPolicy struct {
	Rules []ReminderRule `koanf:"rules"`
}

// ReminderRule selects open tickets due within ThresholdDays. Priority and
// DcID narrow the rule when set.
type ReminderRule struct {
	Name          string `koanf:"name"`
	Priority      string `koanf:"priority"`
	DcID          string `koanf:"dc_id"`
	ThresholdDays int    `koanf:"threshold_days"`
}

// DefaultReminderPolicy mirrors the 7 and 21 day SLA windows.
func DefaultReminderPolicy() *ReminderPolicy {
	return &ReminderPolicy{Rules: []ReminderRule{
		{Name: "high-priority-21d", Priority: "High", ThresholdDays: 21},
		{Name: "all-7d", ThresholdDays: 7},
	}}
}

// LoadReminderPolicy reads a YAML policy file. An empty path yields the default policy.
func LoadReminderPolicy(path string) (*ReminderPolicy, error) {
	if path == "" {
		return DefaultReminderPolicy(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load reminder policy: %w", err)
	}

	var policy ReminderPolicy
	if err := k.Unmarshal("", &policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminder policy: %w", err)
	}

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("reminder policy validation failed: %w", err)
	}
	return &policy, nil
}

// Validate checks rule names and thresholds.
func (p *ReminderPolicy) Validate() error {
	if len(p.Rules) == 0 {
		return fmt.Errorf("at least one rule must be configured")
	}
	seen := make(map[string]struct{}, len(p.Rules))
	for i, rule := range p.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rules[%d].name is required", i)
		}
		if _, dup := seen[rule.Name]; dup {
			return fmt.Errorf("rules[%d].name %q is duplicated", i, rule.Name)
		}
		seen[rule.Name] = struct{}{}
		if rule.ThresholdDays < 0 {
			return fmt.Errorf("rules[%d].threshold_days must not be negative", i)
		}
	}
	return nil
}
