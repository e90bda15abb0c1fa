package config

// Sweepfile represents the structure of the sweep.yaml plan file.
type Sweepfile struct {
	Version     string             `yaml:"version"`
	Name        string             `yaml:"name"`
	Backend     string             `yaml:"backend"`
	Model       string             `yaml:"model"`
	Command     []string           `yaml:"command"`
	Domains     []string           `yaml:"domains"`
	Parameters  map[string]float64 `yaml:"parameters"`
	Span        SpanDTO            `yaml:"span"`
	Observable  string             `yaml:"observable"`
	OnFailure   string             `yaml:"on_failure"`
	Workers     int                `yaml:"workers"`
	Resolutions []map[string]int   `yaml:"resolutions"`
}

// SpanDTO represents the simulated time window in the plan file.
type SpanDTO struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}
