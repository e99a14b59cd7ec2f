// Package curves implements the scenario and technology trajectories of
// spec §4.1: pure functions of (year, scenarioMode) that never fail —
// out-of-range years clamp to the nearest tabulated endpoint.
package curves

// point is one (year, value) sample of a piecewise-linear table.
type point struct {
	year  int
	value float64
}

// interpolate performs piecewise-linear interpolation over a table sorted
// by year, clamping to the endpoint value outside the table's range. Every
// tabulated curve in this package (launch cadence, power progression,
// battery spec, ...) is built on this one helper.
func interpolate(table []point, year int) float64 {
	if len(table) == 0 {
		return 0
	}
	if year <= table[0].year {
		return table[0].value
	}
	last := table[len(table)-1]
	if year >= last.year {
		return last.value
	}
	for i := 1; i < len(table); i++ {
		if year > table[i].year {
			continue
		}
		prev := table[i-1]
		next := table[i]
		span := float64(next.year - prev.year)
		if span <= 0 {
			return next.value
		}
		frac := float64(year-prev.year) / span
		return prev.value + frac*(next.value-prev.value)
	}
	return last.value
}

// launchCadenceTable is launches/year from the base year (180) through
// 2040 (2000), per spec §4.1.
var launchCadenceTable = []point{
	{2025, 180},
	{2030, 650},
	{2035, 1300},
	{2040, 2000},
}

// LaunchCadence returns the scenario-independent launch cadence (launches
// per year) for the given year, clamped outside [2025,2040].
func LaunchCadence(year int) int {
	return int(interpolate(launchCadenceTable, year) + 0.5)
}

// powerPerSatTable is the active kernel's power-progression curve,
// 150 kW (base year) through 1000 kW (2040). See the Open Question in
// SPEC_FULL.md §5.1: a legacy 5→150 kW table also exists in the source and
// is kept below as LegacyPowerPerSatKW, unwired, to document its existence.
var powerPerSatTable = []point{
	{2025, 150},
	{2030, 400},
	{2035, 700},
	{2040, 1000},
}

// PowerPerSatKW returns the per-satellite target bus power for the given
// year, ceiling-applied at the 2040 endpoint.
func PowerPerSatKW(year int) float64 {
	return interpolate(powerPerSatTable, year)
}

// legacyPowerPerSatTable is the source's alternative 5→150 kW curve, used
// by some historical reports but not by the active kernel.
var legacyPowerPerSatTable = []point{
	{2025, 5},
	{2040, 150},
}

// LegacyPowerPerSatKW returns the legacy power-progression curve's value.
// Not called by the kernel; kept to document the Open Question resolution.
func LegacyPowerPerSatKW(year int) float64 {
	return interpolate(legacyPowerPerSatTable, year)
}

// batteryDensityTable is battery energy density in Wh/kg by year.
var batteryDensityTable = []point{
	{2025, 260},
	{2030, 340},
	{2035, 420},
	{2040, 500},
}

// batteryCostTable is battery cost in $/kWh by year.
var batteryCostTable = []point{
	{2025, 140},
	{2030, 90},
	{2035, 60},
	{2040, 45},
}
