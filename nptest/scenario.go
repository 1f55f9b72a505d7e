package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is a single testing problem: likelihoods of every outcome
// under the null (h0) and the alternative (h1) hypotheses, and the
// maximum acceptable size. The YAML keys are h0 and h1 because null
// is a YAML keyword and cannot be used as a mapping key.
type Scenario struct {
	Null  []float64 `yaml:"h0"`
	Alt   []float64 `yaml:"h1"`
	Alpha float64   `yaml:"alpha"`
}

// loadScenario builds a scenario from a YAML file and/or the inline
// vector flags. Inline vectors override the file; the alpha flag is
// used when the file sets none.
func loadScenario(fileName, nullS, altS string, alpha float64) (*Scenario, error) {
	s := &Scenario{Alpha: alpha}
	if fileName != "" {
		data, err := os.ReadFile(fileName)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse scenario %q: %w", fileName, err)
		}
		if s.Alpha == 0 {
			s.Alpha = alpha
		}
	}
	if nullS != "" {
		v, err := parseVector(nullS)
		if err != nil {
			return nil, fmt.Errorf("-null: %w", err)
		}
		s.Null = v
	}
	if altS != "" {
		v, err := parseVector(altS)
		if err != nil {
			return nil, fmt.Errorf("-alt: %w", err)
		}
		s.Alt = v
	}
	if len(s.Null) == 0 && len(s.Alt) == 0 {
		return nil, errors.New("no likelihoods given; use a scenario file or -null/-alt")
	}
	return s, nil
}

// parseVector parses a comma-separated list of floats.
func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	v := make([]float64, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}
