package bench

import (
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	ImplHashSet = "hashset"
	ImplBuiltin = "builtin"

	WorkloadInsert   = "insert"
	WorkloadContains = "contains"
	WorkloadRemove   = "remove"
	WorkloadIterate  = "iterate"
)

var (
	knownImplementations = []string{ImplHashSet, ImplBuiltin}
	knownWorkloads       = []string{WorkloadInsert, WorkloadContains, WorkloadRemove, WorkloadIterate}
)

// Config describes a benchmark run.
type Config struct {
	Size            int      `yaml:"size"`
	Rounds          int      `yaml:"rounds"`
	InsertSeed      uint64   `yaml:"insert_seed"`
	ContainsSeed    uint64   `yaml:"contains_seed"`
	Probe           uint64   `yaml:"probe"`
	Implementations []string `yaml:"implementations"`
	Workloads       []string `yaml:"workloads"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:            10000,
		Rounds:          20,
		InsertSeed:      123,
		ContainsSeed:    456,
		Probe:           500,
		Implementations: []string{ImplHashSet, ImplBuiltin},
		Workloads:       []string{WorkloadInsert, WorkloadContains},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, c.Rounds)
	}
	for _, impl := range c.Implementations {
		if !slices.Contains(knownImplementations, impl) {
			return fmt.Errorf("%w: %q", ErrUnknownImplementation, impl)
		}
	}
	for _, w := range c.Workloads {
		if !slices.Contains(knownWorkloads, w) {
			return fmt.Errorf("%w: %q", ErrUnknownWorkload, w)
		}
	}
	return nil
}
