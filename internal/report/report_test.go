package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func sampleEntries() []model.DebugEntry {
	return []model.DebugEntry{
		{Year: 2025, SatellitesTotal: 100, SurvivalFraction: 0.97, OrbitComputeShare: 0.1, BlendedCostUSDPerPFLOP: 5000, TempCoreC: 40, ThermalRegime: model.RegimeNominal},
		{Year: 2026, SatellitesTotal: 150, SurvivalFraction: 0.96, OrbitComputeShare: 0.12, BlendedCostUSDPerPFLOP: 4800, TempCoreC: 42, ThermalRegime: model.RegimeNominal},
	}
}

func TestTableReporterIncludesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter("table", &buf)
	if err := r.Report(sampleEntries(), ReportMeta{ScenarioMode: model.ScenarioBaseline, StartYear: 2025, EndYear: 2026}); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2025") || !strings.Contains(buf.String(), "2026") {
		t.Errorf("expected both years in table output, got:\n%s", buf.String())
	}
}

func TestJSONReporterValidJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter("json", &buf)
	if err := r.Report(sampleEntries(), ReportMeta{ScenarioMode: model.ScenarioBaseline}); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"entries"`) {
		t.Errorf("expected entries key in JSON output, got:\n%s", buf.String())
	}
}

func TestMarkdownReporterProducesTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter("markdown", &buf)
	if err := r.Report(sampleEntries(), ReportMeta{ScenarioMode: model.ScenarioBaseline}); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(buf.String(), "|---|") {
		t.Errorf("expected markdown table separator, got:\n%s", buf.String())
	}
}

func TestTableReporterEmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter("table", &buf)
	if err := r.Report(nil, ReportMeta{}); err != nil {
		t.Fatalf("report failed on empty entries: %v", err)
	}
	if !strings.Contains(buf.String(), "No entries produced") {
		t.Errorf("expected empty-entries message, got:\n%s", buf.String())
	}
}
