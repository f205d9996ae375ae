package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archer333/ModelSythesisWithES/internal/parallel"
)

// Config describes one experiment run.
type Config struct {
	// Name labels the run in output files.
	Name string `yaml:"name"`

	// Seed pins the random stream for the run. Zero means unset: the seed
	// is drawn from OS entropy when the generator is first requested, and
	// the run is not reproducible.
	Seed int64 `yaml:"seed"`

	// Workers is the number of concurrent work units. Each worker receives
	// its own generator instance. Zero means one per CPU.
	Workers int `yaml:"workers"`

	// Samples is the number of draws or evaluations per worker.
	Samples int `yaml:"samples"`
}

// Load reads a YAML experiment config from path. Unknown fields are
// rejected so typos in experiment files fail loudly.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.Workers == 0 {
		c.Workers = parallel.NumWorkers()
	}
	if c.Samples == 0 {
		c.Samples = 10000
	}
}

func validate(c *Config) error {
	if c.Seed < 0 || c.Seed > 1<<32-1 {
		return fmt.Errorf("seed %d outside the 32-bit range", c.Seed)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must be non-negative, got %d", c.Samples)
	}
	return nil
}
