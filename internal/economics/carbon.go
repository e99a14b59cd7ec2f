package economics

// CarbonRequest bundles a year's carbon accounting inputs.
type CarbonRequest struct {
	LaunchedMassKg    float64
	LaunchCarbonPerKg float64

	RetiredCount    int
	AvgSatMassKg    float64

	CumulativeOrbitCarbonKg float64
	PowerTotalKW            float64

	GroundCarbonIntensityGPerKWh float64
	OrbitShare                   float64
}

// CarbonResult is the year's carbon accounting output.
type CarbonResult struct {
	LaunchCarbonKg              float64
	ReplacementCarbonKg         float64
	CumulativeOrbitCarbonKg     float64
	CumulativeOrbitEnergyTWh    float64
	OrbitCarbonIntensityGPerKWh float64
	MixCarbonIntensityGPerKWh   float64
}

// Assess computes this year's launch/replacement carbon and the resulting
// orbit and blended carbon intensities.
func Assess(req CarbonRequest) CarbonResult {
	launchCarbonKg := req.LaunchedMassKg * req.LaunchCarbonPerKg
	replacementCarbonKg := float64(req.RetiredCount) * req.AvgSatMassKg * req.LaunchCarbonPerKg

	cumulativeOrbitCarbonKg := req.CumulativeOrbitCarbonKg + launchCarbonKg + replacementCarbonKg

	const hoursPerYear = 8760
	energyTWh := req.PowerTotalKW * hoursPerYear / 1e9

	orbitIntensity := 0.0
	if energyTWh > 0 {
		// kg/TWh -> g/kWh: *1000 (kg->g) / 1e9 (TWh->kWh) == *1e-6
		orbitIntensity = cumulativeOrbitCarbonKg / energyTWh * 1e-6
	}

	mixIntensity := req.OrbitShare*orbitIntensity + (1-req.OrbitShare)*req.GroundCarbonIntensityGPerKWh

	return CarbonResult{
		LaunchCarbonKg:              launchCarbonKg,
		ReplacementCarbonKg:         replacementCarbonKg,
		CumulativeOrbitCarbonKg:     cumulativeOrbitCarbonKg,
		CumulativeOrbitEnergyTWh:    energyTWh,
		OrbitCarbonIntensityGPerKWh: orbitIntensity,
		MixCarbonIntensityGPerKWh:   mixIntensity,
	}
}
