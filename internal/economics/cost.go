package economics

import "math"

// CostState is the persistent calibration state carried across years: the
// orbit cost scale is fixed once, at the first year with non-zero orbit
// compute, and never recomputed afterward.
type CostState struct {
	OrbitCostScale            float64
	OrbitCostScaleInitialized bool

	CumulativeOrbitalCostUSD float64
	CumulativeExportedPFLOPs float64
}

// CostRequest bundles a year's cost inputs.
type CostRequest struct {
	YearIndex int

	OrbitOPEXUSD       float64
	ExportedPFLOPs     float64
	BaseGroundUnitCost float64
	GroundLearningRate float64
	OrbitLearningRate  float64
	OrbitInitialCostMultiple float64
}

// CostResult is the year's resolved unit costs plus the carried-forward
// calibration state.
type CostResult struct {
	GroundUnitCostUSDPerPFLOP    float64
	OrbitUnitCostUSDPerPFLOP     float64
	OrbitUnitCostRawUSDPerPFLOP  float64
	State                        CostState
	CalibratedThisYear           bool
}

// Resolve advances the cost calibration state by one year and returns the
// resolved ground and orbit unit costs.
func Resolve(state CostState, req CostRequest) CostResult {
	groundUnit := req.BaseGroundUnitCost * math.Pow(1-req.GroundLearningRate, float64(req.YearIndex))

	next := state
	next.CumulativeOrbitalCostUSD += req.OrbitOPEXUSD
	next.CumulativeExportedPFLOPs += req.ExportedPFLOPs

	rawOrbitUnit := 0.0
	if next.CumulativeExportedPFLOPs > 0 {
		rawOrbitUnit = next.CumulativeOrbitalCostUSD / next.CumulativeExportedPFLOPs
	}

	calibratedThisYear := false
	if !next.OrbitCostScaleInitialized && req.ExportedPFLOPs > 0 && rawOrbitUnit > 0 {
		next.OrbitCostScale = (groundUnit * req.OrbitInitialCostMultiple) / rawOrbitUnit
		next.OrbitCostScaleInitialized = true
		calibratedThisYear = true
	}

	// Until calibration is possible (spec §7 CalibrationNotYetPossible),
	// orbit unit cost falls back to ground x the scenario's initial cost
	// multiple rather than zero — this is expected, not an error.
	orbitUnit := groundUnit * req.OrbitInitialCostMultiple
	if next.OrbitCostScaleInitialized {
		orbitUnit = rawOrbitUnit * next.OrbitCostScale * math.Pow(1-req.OrbitLearningRate, float64(req.YearIndex))
	}

	return CostResult{
		GroundUnitCostUSDPerPFLOP:   groundUnit,
		OrbitUnitCostUSDPerPFLOP:    orbitUnit,
		OrbitUnitCostRawUSDPerPFLOP: rawOrbitUnit,
		State:                       next,
		CalibratedThisYear:          calibratedThisYear,
	}
}

// GroundOPEX returns the ground baseline's annual operating expense: the
// electricity bill plus 10% of ground CAPEX.
func GroundOPEX(groundCapexUSD, dollarsPerKWh, demandKW float64) float64 {
	const hoursPerYear = 8760
	electricityBill := hoursPerYear * dollarsPerKWh * demandKW
	return electricityBill + 0.10*groundCapexUSD
}

// OrbitOPEX returns the orbit fleet's annual operating expense: per-sat
// operations, ground-station costs, insurance, and the congestion adder.
func OrbitOPEX(perSatOpsUSD float64, satellitesAlive int, groundStationUSD, insuranceUSD, congestionAdderUSD float64) float64 {
	return perSatOpsUSD*float64(satellitesAlive) + groundStationUSD + insuranceUSD + congestionAdderUSD
}
