// Package telemetry exposes the debug store as Prometheus gauges for
// `ocse serve`. The teacher's internal/metrics package is a Prometheus
// *client* querying an external backend; OCSE inverts that role and
// instruments itself as a source, using promauto/promhttp instead of the
// teacher's promapi/promv1 query client.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbitalcompute/ocse/internal/ledger"
	"github.com/orbitalcompute/ocse/internal/model"
)

// Exporter publishes the latest debug entry per scenario as Prometheus
// gauges, labeled by scenarioMode.
type Exporter struct {
	registry *prometheus.Registry

	satellitesTotal   *prometheus.GaugeVec
	survivalFraction  *prometheus.GaugeVec
	orbitComputeShare *prometheus.GaugeVec
	blendedCostUSD    *prometheus.GaugeVec
	tempCoreC         *prometheus.GaugeVec
	thermalRegime     *prometheus.GaugeVec
}

// NewExporter registers the gauge set on a fresh registry.
func NewExporter() *Exporter {
	registry := prometheus.NewRegistry()
	labels := []string{"scenario_mode"}

	e := &Exporter{
		registry: registry,
		satellitesTotal: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "satellites_total",
			Help:      "Total satellites alive (Class A + Class B).",
		}, labels),
		survivalFraction: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "survival_fraction",
			Help:      "Blended fleet survival fraction.",
		}, labels),
		orbitComputeShare: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "orbit_compute_share",
			Help:      "Fraction of total compute demand served from orbit.",
		}, labels),
		blendedCostUSD: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "blended_cost_usd_per_pflop",
			Help:      "Share-weighted blended cost per PFLOP.",
		}, labels),
		tempCoreC: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "temp_core_celsius",
			Help:      "Fleet-representative core temperature.",
		}, labels),
		thermalRegime: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ocse",
			Name:      "thermal_regime",
			Help:      "Thermal regime as an enum (0=nominal, 1=overload, 2=critical).",
		}, labels),
	}
	return e
}

// Observe updates the gauges from one debug entry.
func (e *Exporter) Observe(entry model.DebugEntry) {
	mode := string(entry.ScenarioMode)
	e.satellitesTotal.WithLabelValues(mode).Set(float64(entry.SatellitesTotal))
	e.survivalFraction.WithLabelValues(mode).Set(entry.SurvivalFraction)
	e.orbitComputeShare.WithLabelValues(mode).Set(entry.OrbitComputeShare)
	e.blendedCostUSD.WithLabelValues(mode).Set(entry.BlendedCostUSDPerPFLOP)
	e.tempCoreC.WithLabelValues(mode).Set(entry.TempCoreC)
	e.thermalRegime.WithLabelValues(mode).Set(regimeValue(entry.ThermalRegime))
}

// ObserveStore updates the gauges from every entry currently in the store,
// leaving the latest entry per scenario as the surfaced value.
func (e *Exporter) ObserveStore(s *ledger.Store) {
	for _, entry := range s.All() {
		e.Observe(entry)
	}
}

// Handler returns the HTTP handler serving this exporter's registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

func regimeValue(regime model.ThermalRegime) float64 {
	switch regime {
	case model.RegimeOverload:
		return 1
	case model.RegimeCritical:
		return 2
	default:
		return 0
	}
}
