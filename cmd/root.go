package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orbitalcompute/ocse/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ocse",
	Short: "Orbital Compute Simulation Engine",
	Long: `OCSE simulates a fleet of orbital data-center satellites and a blended
orbit+ground compute market, year by year, under a chosen scenario.

It runs the launch/allocation/physics/congestion/economics pipeline for
every configured year and reports satellite counts, survival, orbit
compute share, blended cost, and thermal state.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ocse.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.PersistentFlags().StringSlice("scenarios", nil, "scenario modes to run (BASELINE, ORBITAL_BULL, ORBITAL_BEAR)")
	rootCmd.PersistentFlags().Int("start-year", 0, "first simulated year")
	rootCmd.PersistentFlags().Int("end-year", 0, "last simulated year")
	rootCmd.PersistentFlags().String("strategy", "", "compute strategy: LATENCY, COST, CARBON, or BALANCED")
	rootCmd.PersistentFlags().String("launch", "", "launch strategy: heavy, medium, or light")
	rootCmd.PersistentFlags().String("risk-mode", "", "risk mode: SAFE, AGGRESSIVE, or YOLO")
	rootCmd.PersistentFlags().String("output", "", "output format: table, json, markdown")

	_ = viper.BindPFlag("run.scenarios", rootCmd.PersistentFlags().Lookup("scenarios"))
	_ = viper.BindPFlag("run.start_year", rootCmd.PersistentFlags().Lookup("start-year"))
	_ = viper.BindPFlag("run.end_year", rootCmd.PersistentFlags().Lookup("end-year"))
	_ = viper.BindPFlag("run.strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	_ = viper.BindPFlag("run.launch", rootCmd.PersistentFlags().Lookup("launch"))
	_ = viper.BindPFlag("run.risk_mode", rootCmd.PersistentFlags().Lookup("risk-mode"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

func loadConfig() error {
	cfg = config.Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ocse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ocse")
	}

	viper.SetEnvPrefix("OCSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return cfg.Validate()
}
