package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astart/heuristic"
	"github.com/katalvlaran/astart/search"
)

// ErrConfig indicates an invalid benchmark configuration.
var ErrConfig = errors.New("bench: invalid config")

// ModeConfig describes one strategy setting to measure.
type ModeConfig struct {
	Name      string          `yaml:"name"`
	Strategy  search.Strategy `yaml:"strategy"`
	K         int             `yaml:"k"`
	Adaptive  bool            `yaml:"adaptive"`
	EarlyExit bool            `yaml:"early_exit"`
}

// Workload kinds.
const (
	KindGrid   = "grid"
	KindSparse = "sparse"
)

// Config drives one benchmark run.
//
// Kind "grid" (default): without Map a random Width×Height grid is
// generated, each cell blocked with probability Density. With Map the
// MovingAI map is loaded instead and queries come from Scenarios when given.
//
// Kind "sparse": an undirected random graph over Nodes nodes, each pair
// linked with probability Probability and integer weights in [1, MaxWeight].
// Sparse graphs have no coordinates, so Heuristic must be zero.
type Config struct {
	Kind          string         `yaml:"kind"`
	Nodes         int            `yaml:"nodes"`
	Probability   float64        `yaml:"probability"`
	MaxWeight     int            `yaml:"max_weight"`
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Density       float64        `yaml:"density"`
	Seed          int64          `yaml:"seed"`
	Connectivity  int            `yaml:"connectivity"`
	CornerCutting bool           `yaml:"corner_cutting"`
	Connect       bool           `yaml:"connect"`
	Queries       int            `yaml:"queries"`
	Heuristic     heuristic.Mode `yaml:"heuristic"`
	Modes         []ModeConfig   `yaml:"modes"`
	Workers       int            `yaml:"workers"`
	Map           string         `yaml:"map"`
	Scenarios     string         `yaml:"scenarios"`
	Verify        bool           `yaml:"verify"`
}

// DefaultConfig returns a small octile workload comparing the classical
// search with three batched settings.
func DefaultConfig() Config {
	return Config{
		Kind:         KindGrid,
		Nodes:        4096,
		Probability:  0.001,
		MaxWeight:    10,
		Width:        128,
		Height:       128,
		Density:      0.25,
		Seed:         1,
		Connectivity: 8,
		Connect:      true,
		Queries:      200,
		Heuristic:    heuristic.Octile,
		Modes: []ModeConfig{
			{Name: "classic", Strategy: search.StrategyClassic},
			{Name: "batched-k5", Strategy: search.StrategyBatched, K: 5},
			{Name: "batched-k5-adaptive", Strategy: search.StrategyBatched, K: 5, Adaptive: true},
			{Name: "batched-k20", Strategy: search.StrategyBatched, K: 20},
		},
		Workers: runtime.GOMAXPROCS(0),
		Verify:  true,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("bench: open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("bench: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and fills per-mode defaults (K = DefaultBatchSize,
// Name derived from the settings).
func (c *Config) Validate() error {
	switch c.Kind {
	case "":
		c.Kind = KindGrid
	case KindGrid:
	case KindSparse:
		if err := c.validateSparse(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrConfig, c.Kind)
	}
	if c.Kind == KindGrid && c.Map == "" {
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("%w: grid %dx%d", ErrConfig, c.Width, c.Height)
		}
		if c.Density < 0 || c.Density >= 1 {
			return fmt.Errorf("%w: density %v outside [0,1)", ErrConfig, c.Density)
		}
		if c.Connectivity != 4 && c.Connectivity != 8 {
			return fmt.Errorf("%w: connectivity %d, want 4 or 8", ErrConfig, c.Connectivity)
		}
	}
	if c.Scenarios != "" && c.Map == "" {
		return fmt.Errorf("%w: scenarios need a map", ErrConfig)
	}
	if c.Queries < 0 {
		return fmt.Errorf("%w: queries %d", ErrConfig, c.Queries)
	}
	if !c.Heuristic.Valid() {
		return fmt.Errorf("%w: %w", ErrConfig, heuristic.ErrUnknownMode)
	}
	if c.Heuristic == heuristic.External {
		return fmt.Errorf("%w: external heuristic needs a per-query table", ErrConfig)
	}
	if len(c.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrConfig)
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	seen := make(map[string]bool, len(c.Modes))
	for i := range c.Modes {
		m := &c.Modes[i]
		switch m.Strategy {
		case search.StrategyClassic:
		case search.StrategyBatched:
			if m.K == 0 {
				m.K = search.DefaultBatchSize
			}
			if m.K < 1 {
				return fmt.Errorf("%w: mode %d: k=%d", ErrConfig, i, m.K)
			}
		default:
			return fmt.Errorf("%w: mode %d: unknown strategy %q", ErrConfig, i, m.Strategy)
		}
		if m.Name == "" {
			m.Name = m.defaultName()
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate mode name %q", ErrConfig, m.Name)
		}
		seen[m.Name] = true
	}

	return nil
}

func (c *Config) validateSparse() error {
	if c.Map != "" {
		return fmt.Errorf("%w: a map needs kind %q", ErrConfig, KindGrid)
	}
	if c.Nodes < 1 {
		return fmt.Errorf("%w: nodes %d", ErrConfig, c.Nodes)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: probability %v outside [0,1]", ErrConfig, c.Probability)
	}
	if c.MaxWeight < 1 {
		return fmt.Errorf("%w: max_weight %d", ErrConfig, c.MaxWeight)
	}
	if c.Heuristic != heuristic.Zero {
		return fmt.Errorf("%w: %s heuristic needs grid coordinates", ErrConfig, c.Heuristic)
	}

	return nil
}

func (m ModeConfig) defaultName() string {
	if m.Strategy == search.StrategyClassic {
		return string(search.StrategyClassic)
	}
	name := fmt.Sprintf("batched-k%d", m.K)
	if m.Adaptive {
		name += "-adaptive"
	}
	if m.EarlyExit {
		name += "-early"
	}

	return name
}
