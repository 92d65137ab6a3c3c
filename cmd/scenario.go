package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML run configuration: which system to simulate, for how
// long, against which input traces. CLI flags override scenario values.
type Scenario struct {
	System   string            `yaml:"system"`
	Duration float64           `yaml:"duration,omitempty"`
	Realtime bool              `yaml:"realtime,omitempty"`
	Inputs   map[string]string `yaml:"inputs,omitempty"`
	CSV      string            `yaml:"csv,omitempty"`
}

// knownSystems lists the bundled control systems and the input stream names
// each one accepts.
var knownSystems = map[string][]string{
	"elevator":     {"button", "joystick_x", "joystick_y"},
	"garage":       {"digit", "submit", "joystick_x", "joystick_y", "temperature"},
	"temperature":  {"readings"},
	"trafficlight": {},
}

// Validate checks the scenario against the bundled systems.
func (s *Scenario) Validate() error {
	names, ok := knownSystems[s.System]
	if !ok {
		return fmt.Errorf("unknown system %q", s.System)
	}
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	for name := range s.Inputs {
		if !allowed[name] {
			return fmt.Errorf("system %q has no input stream %q", s.System, name)
		}
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must be non-negative, got %v", s.Duration)
	}
	return nil
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}
