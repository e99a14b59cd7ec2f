package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitalcompute/ocse/internal/orchestrator"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured scenarios and print a report",
	Long: `Executes every scenario in run.scenarios from run.start_year to
run.end_year, applying run.strategy/run.launch to every year absent a
more granular plan, and reports the resulting per-year debug entries.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	orch := orchestrator.New(cfg)
	orch.Writer = os.Stdout

	_, err := orch.Run(ctx, orchestrator.RunRequest{})
	return err
}
