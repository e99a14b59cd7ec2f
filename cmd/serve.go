package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitalcompute/ocse/internal/orchestrator"
	"github.com/orbitalcompute/ocse/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the configured scenarios and serve the results as Prometheus metrics",
	Long: `Runs every configured scenario once, then blocks serving the resulting
debug entries as Prometheus gauges on telemetry.listen_addr until
terminated.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	orch := orchestrator.New(cfg)
	orch.Writer = os.Stdout

	store, err := orch.Run(ctx, orchestrator.RunRequest{})
	if err != nil {
		return err
	}

	exporter := telemetry.NewExporter()
	exporter.ObserveStore(store)

	mux := http.NewServeMux()
	mux.Handle("/metrics", exporter.Handler())

	fmt.Printf("Serving metrics for %d debug entries on %s/metrics\n", store.Len(), cfg.Telemetry.ListenAddr)
	return http.ListenAndServe(cfg.Telemetry.ListenAddr, mux)
}
