// Package config is the top-level OCSE configuration, loaded by cobra/viper
// from ocse.yaml, OCSE_-prefixed environment variables, and flags.
package config

import "fmt"

// Config is the top-level configuration for OCSE.
type Config struct {
	Run        RunConfig        `yaml:"run"`
	Groundcost GroundcostConfig `yaml:"groundcost"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Output     OutputConfig     `yaml:"output"`
}

// RunConfig controls which scenarios and years a default `ocse run`
// executes.
type RunConfig struct {
	Scenarios []string `yaml:"scenarios"`
	StartYear int      `yaml:"start_year"`
	EndYear   int       `yaml:"end_year"`
	Strategy  string    `yaml:"strategy"`   // compute strategy applied to every year absent an override
	Launch    string    `yaml:"launch"`     // launch strategy applied to every year
	RiskMode  string    `yaml:"risk_mode"`
}

// GroundcostConfig holds settings for the AWS Pricing lookup in
// internal/groundcost. No run path reads it: the kernel uses a fixed base
// ground unit cost.
type GroundcostConfig struct {
	Enabled        bool   `yaml:"enabled"`
	InstanceFamily string `yaml:"instance_family"`
	CacheDir       string `yaml:"cache_dir"`
}

// TelemetryConfig controls the `ocse serve` Prometheus exporter.
type TelemetryConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// OutputConfig controls report formatting.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Run: RunConfig{
			Scenarios: []string{"BASELINE"},
			StartYear: 2025,
			EndYear:   2040,
			Strategy:  "BALANCED",
			Launch:    "medium",
			RiskMode:  "SAFE",
		},
		Groundcost: GroundcostConfig{
			Enabled:        false,
			InstanceFamily: "p4d.24xlarge",
			CacheDir:       "",
		},
		Telemetry: TelemetryConfig{
			ListenAddr: ":9090",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks the config for consistency, following the teacher's
// style: early returns with fmt.Errorf and a map of valid enum values. No
// field is clamped or rewritten; every inconsistency is returned as an error.
func (c *Config) Validate() error {
	if c.Run.EndYear < c.Run.StartYear {
		return fmt.Errorf("end_year (%d) must be >= start_year (%d)", c.Run.EndYear, c.Run.StartYear)
	}
	if len(c.Run.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario must be configured")
	}

	validScenarios := map[string]bool{"BASELINE": true, "ORBITAL_BULL": true, "ORBITAL_BEAR": true}
	for _, s := range c.Run.Scenarios {
		if !validScenarios[s] {
			return fmt.Errorf("unknown scenario %q; must be BASELINE, ORBITAL_BULL, or ORBITAL_BEAR", s)
		}
	}

	validStrategies := map[string]bool{"LATENCY": true, "COST": true, "CARBON": true, "BALANCED": true}
	if !validStrategies[c.Run.Strategy] {
		return fmt.Errorf("strategy must be LATENCY, COST, CARBON, or BALANCED, got %q", c.Run.Strategy)
	}

	validLaunch := map[string]bool{"heavy": true, "medium": true, "light": true}
	if !validLaunch[c.Run.Launch] {
		return fmt.Errorf("launch strategy must be heavy, medium, or light, got %q", c.Run.Launch)
	}

	validRisk := map[string]bool{"SAFE": true, "AGGRESSIVE": true, "YOLO": true}
	if !validRisk[c.Run.RiskMode] {
		return fmt.Errorf("risk_mode must be SAFE, AGGRESSIVE, or YOLO, got %q", c.Run.RiskMode)
	}

	validFormats := map[string]bool{"table": true, "json": true, "markdown": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output format must be table, json, or markdown, got %q", c.Output.Format)
	}

	return nil
}
