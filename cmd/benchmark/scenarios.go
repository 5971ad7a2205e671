package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

type scenario struct {
	Name         string  `yaml:"name"`         // friendly name, should be unique
	Width        int     `yaml:"width"`        // nodes per layer
	Layers       int     `yaml:"layers"`       // including the source layer
	Sources      int     `yaml:"sources"`      // dependencies per node
	ReadFraction float64 `yaml:"readFraction"` // fraction of leaves read each iteration
	Iterations   int64   `yaml:"iterations"`
}

func (s scenario) validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Width < 1 {
		errs = append(errs, fmt.Errorf("width %d must be positive", s.Width))
	}
	if s.Layers < 2 {
		errs = append(errs, fmt.Errorf("layers %d must be at least 2", s.Layers))
	}
	if s.Sources < 1 {
		errs = append(errs, fmt.Errorf("sources %d must be positive", s.Sources))
	}
	if s.ReadFraction <= 0 || s.ReadFraction > 1 {
		errs = append(errs, fmt.Errorf("readFraction %v must be in (0, 1]", s.ReadFraction))
	}
	if s.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations %d must be positive", s.Iterations))
	}
	return errors.Join(errs...)
}

// loadScenarios reads scenarios from path, or the embedded defaults when path
// is empty.
func loadScenarios(path string) ([]scenario, error) {
	data := defaultScenarios
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read scenarios: %w", err)
		}
	}
	return parseScenarios(data)
}

func parseScenarios(data []byte) ([]scenario, error) {
	var scenarios []scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios defined")
	}

	seen := map[string]bool{}
	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scenario %q defined twice", s.Name)
		}
		seen[s.Name] = true
	}
	return scenarios, nil
}
