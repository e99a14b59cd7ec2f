package curves

// Radiation/ECC overhead constants by orbital environment, grounded on the
// spec's §4.2 bus-design algorithm. These don't vary by year: the altitude
// multiplier captures the shell-specific dose, not a secular trend.
var radiationByShell = map[string]float64{
	"low":     1.00,
	"mid":     1.35,
	"sunSync": 1.60,
}

// baseRadiation is the radiation model before the per-shell multiplier.
var baseRadiation = struct {
	eccOverhead        float64
	redundancyOverhead float64
	mtbfReduction      float64
	tidPerYearBase     float64
	protonFluxBase     float64
}{
	eccOverhead:        0.15,
	redundancyOverhead: 0.20,
	mtbfReduction:      0.30,
	tidPerYearBase:     2.5, // krad/year at low-LEO baseline
	protonFluxBase:     1.0,
}

// classBAvailabilityFloor is the earliest year Class-B can ever be
// available, regardless of scenario; ParamsForMode's ClassBAvailableFrom is
// always >= this.
const classBAvailabilityFloor = 2027

// orbitAllocationBase is the baseline shell split before strategy tilt.
var orbitAllocationBase = map[string]float64{
	"low":     0.45,
	"mid":     0.35,
	"sunSync": 0.20,
}
