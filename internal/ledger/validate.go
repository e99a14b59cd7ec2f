package ledger

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/orbitalcompute/ocse/internal/model"
)

// Diagnostic classifies the four error kinds of spec §7. ConfigError and
// InvariantViolation are fatal (the run aborts); NumericOverflow and
// CalibrationNotYetPossible are recorded on the entry's Diagnostics and
// never abort a run.
type Diagnostic string

const (
	DiagnosticConfigError                Diagnostic = "CONFIG_ERROR"
	DiagnosticInvariantViolation         Diagnostic = "INVARIANT_VIOLATION"
	DiagnosticNumericOverflow            Diagnostic = "NUMERIC_OVERFLOW"
	DiagnosticCalibrationNotYetPossible  Diagnostic = "CALIBRATION_NOT_YET_POSSIBLE"
)

// ErrConfig and ErrInvariant are the two fatal sentinel errors. Callers
// wrap these with %w to add the offending field/value.
var (
	ErrConfig    = errors.New("ledger: config error")
	ErrInvariant = errors.New("ledger: invariant violation")
)

const massSumTolerance = 0.001 // 0.1%

// Validate checks the universal single-year invariants (spec §8, items
// 1-6, 8, 9) against one entry. Returns a wrapped ErrInvariant on the first
// violation found.
func Validate(e model.DebugEntry) error {
	if e.SatellitesTotal != e.ClassASatellitesAlive+e.ClassBSatellitesAlive {
		return fmt.Errorf("%w: satellitesTotal %d != classA %d + classB %d",
			ErrInvariant, e.SatellitesTotal, e.ClassASatellitesAlive, e.ClassBSatellitesAlive)
	}
	if e.ComputeEffectiveFLOPS != e.ComputeExportableFLOPS {
		return fmt.Errorf("%w: computeEffective %v != computeExportable %v",
			ErrInvariant, e.ComputeEffectiveFLOPS, e.ComputeExportableFLOPS)
	}
	if e.SurvivalFraction < 0 || e.SurvivalFraction > 1 {
		return fmt.Errorf("%w: survivalFraction %v out of [0,1]", ErrInvariant, e.SurvivalFraction)
	}
	for name, util := range map[string]float64{
		"heat":        entryHeatUtilization(e),
		"backhaul":    e.BackhaulUtilization,
		"maintenance": e.MaintenanceUtilization,
	} {
		if util < 0 || util > 1 {
			return fmt.Errorf("%w: %s utilization %v out of [0,1]", ErrInvariant, name, util)
		}
	}
	if e.PowerUtilizationPct > 100 {
		return fmt.Errorf("%w: powerUtilizationPct %v exceeds 100", ErrInvariant, e.PowerUtilizationPct)
	}

	componentSum := floats.Sum([]float64{
		e.SiliconMassKg, e.SolarArrayMassKg, e.RadiatorMassKg, e.ShieldingMassKg,
		e.AvionicsMassKg, e.BatteryMassKg, e.ADCSMassKg, e.PropulsionMassKg,
		e.StructureMassKg, e.PowerElectronicsMassKg, e.OtherMassKg,
	})
	if e.BusTotalMassKg > 0 {
		relErr := math.Abs(componentSum-e.BusTotalMassKg) / e.BusTotalMassKg
		if relErr > massSumTolerance {
			return fmt.Errorf("%w: component mass sum %v does not match busTotalMassKg %v (%.4f%% off)",
				ErrInvariant, componentSum, e.BusTotalMassKg, relErr*100)
		}
	}

	if e.ComputeRawFLOPS < e.ComputeEffectiveFLOPS {
		return fmt.Errorf("%w: computeRaw %v less than computeEffective %v",
			ErrInvariant, e.ComputeRawFLOPS, e.ComputeEffectiveFLOPS)
	}

	const epsilon = 1e-6
	if e.OrbitComputeShare < -epsilon || e.OrbitComputeShare > 1+epsilon {
		return fmt.Errorf("%w: orbitComputeShare %v out of range", ErrInvariant, e.OrbitComputeShare)
	}
	groundShare := 1 - e.OrbitComputeShare
	if math.Abs(groundShare+e.OrbitComputeShare-1) > epsilon {
		return fmt.Errorf("%w: ground+orbit share does not sum to 1", ErrInvariant)
	}

	if e.HeatRejectKW > 0 && e.TempCoreC-e.TempRadiatorC < 10-epsilon {
		return fmt.Errorf("%w: tempCore %v not >=10C above tempRadiator %v while rejecting heat",
			ErrInvariant, e.TempCoreC, e.TempRadiatorC)
	}

	return nil
}

// entryHeatUtilization derives heat utilization from the entry's recorded
// generation/rejection, since DebugEntry stores the components rather than
// the ratio directly.
func entryHeatUtilization(e model.DebugEntry) float64 {
	if e.HeatRejectKW <= 0 {
		return 0
	}
	return e.HeatGenKW / e.HeatRejectKW
}

// ValidateWindow checks the cross-year invariants (spec §8 item 7) over a
// 5-year rolling window of entries for a single scenario: the cumulative
// series must be monotonically non-decreasing. The year-over-year
// differences are computed in a plain loop and checked with floats.Min;
// stat.Mean of the differences is only reported in the error message.
func ValidateWindow(entries []model.DebugEntry) error {
	if len(entries) < 2 {
		return nil
	}

	series := map[string][]float64{
		"cumulativeOrbitalCostUSD": make([]float64, len(entries)),
		"cumulativeExportedPFLOPs": make([]float64, len(entries)),
		"cumulativeOrbitalCarbonKg": make([]float64, len(entries)),
		"cumulativeOrbitEnergyTWh": make([]float64, len(entries)),
	}
	for i, e := range entries {
		series["cumulativeOrbitalCostUSD"][i] = e.CumulativeOrbitalCostUSD
		series["cumulativeExportedPFLOPs"][i] = e.CumulativeExportedPFLOPs
		series["cumulativeOrbitalCarbonKg"][i] = e.CumulativeOrbitalCarbonKg
		series["cumulativeOrbitEnergyTWh"][i] = e.CumulativeOrbitEnergyTWh
	}

	for name, values := range series {
		diffs := make([]float64, len(values)-1)
		for i := 1; i < len(values); i++ {
			diffs[i-1] = values[i] - values[i-1]
		}
		if floats.Min(diffs) < 0 {
			mean := stat.Mean(diffs, nil)
			return fmt.Errorf("%w: %s is not monotonically non-decreasing across window (mean delta %v)",
				ErrInvariant, name, mean)
		}
	}
	return nil
}
