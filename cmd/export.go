package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/orchestrator"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the configured scenarios and export the debug ledger as JSON",
	Long: `Like 'run', but instead of (or in addition to) printing a report,
writes every per-year debug entry produced during the run to a JSON
file keyed by "<year>_<scenarioMode>".`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("out", "ocse-debug.json", "path to write the exported JSON ledger")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	outPath, _ := cmd.Flags().GetString("out")

	orch := orchestrator.New(cfg)
	orch.Writer = os.Stdout

	store, err := orch.Run(ctx, orchestrator.RunRequest{})
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := ledger.ExportJSON(f, store); err != nil {
		return fmt.Errorf("exporting debug ledger: %w", err)
	}

	fmt.Printf("Exported %d debug entries to %s\n", store.Len(), outPath)
	return nil
}
