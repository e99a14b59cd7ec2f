// Package busdesign implements the per-satellite bus designer of spec §4.2:
// a pure function from target compute and environment to a mass/power/
// thermal bus design, recomputed fresh every year rather than persisted.
package busdesign

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/orbitalcompute/ocse/internal/curves"
	"github.com/orbitalcompute/ocse/internal/model"
)

const (
	stefanBoltzmann = 5.670374419e-8 // W/(m^2 K^4)
	sinkTempK       = 200.0

	electricalLossFraction = 0.15 // 85% of silicon power becomes heat
	radiatorMassPerM2      = 5.0  // kg/m^2
	solarMassPerKW         = 5.0  // kg/kW

	structureFraction        = 0.18
	shieldingFraction        = 0.12
	powerElectronicsFraction = 0.08
	avionicsFraction         = 0.08
	adcsFraction             = 0.04
	otherFraction            = 0.18

	classAEclipseStorageFactor  = 0.6 // kWh per kW of silicon power
	classBSafeModeStorageFactor = 0.1

	propulsionMassPerM2PerYear = 0.05

	tidDerateFloorKrad = 10.0
	tidDerateSpanKrad  = 80.0
)

// DesignRequest bundles the inputs to Design: target compute, GPU specifics,
// environment, and lifetime. All fields are pure inputs — Design reads
// nothing else.
type DesignRequest struct {
	Year               int
	Class              model.SatelliteClass
	Shell              model.OrbitalShell
	TargetTFLOPs       float64
	WattsPerTFLOP       float64
	TFLOPsPerKg         float64
	ShieldingThicknessMM float64
	LifeYears           int
	RadiatorHotTempK    float64
	SolarConstantWPerM2 float64
	PanelEfficiency     float64
	DegradationOverLife float64 // fraction of panel output lost to EOL degradation
}

// Design runs the 11-step bus-design algorithm (spec §4.2) and returns the
// resulting per-satellite design. Pure function of the request; never reads
// or mutates any shared state.
func Design(req DesignRequest) model.BusDesign {
	// 1. Silicon power from target compute.
	siliconPowerKW := req.TargetTFLOPs * req.WattsPerTFLOP / 1000.0

	// 2. Silicon mass: power-based with a compute-density floor.
	siliconMassKg := math.Max(siliconPowerKW*4.35, req.TargetTFLOPs/nonZero(req.TFLOPsPerKg))

	// 3. Heat generated.
	heatKW := (1.0 - electricalLossFraction) * siliconPowerKW

	// 4. Radiator sizing via closed-form Stefan-Boltzmann solve.
	radiatorAreaM2 := radiatorAreaFromFlux(heatKW, req.RadiatorHotTempK)
	radiatorMassKg := radiatorAreaM2 * radiatorMassPerM2

	// 5. Solar array sizing.
	solarAreaM2, solarArrayMassKg := solarArray(siliconPowerKW, req)

	payloadMassKg := siliconMassKg + radiatorMassKg + solarArrayMassKg

	// 6. Structure/shielding/power-electronics as mass fractions of payload.
	structureMassKg := payloadMassKg * structureFraction
	shieldingMassKg := payloadMassKg * shieldingFraction
	powerElectronicsMassKg := payloadMassKg * powerElectronicsFraction

	// 7. Avionics/ADCS fractions.
	avionicsMassKg := payloadMassKg * avionicsFraction
	adcsMassKg := payloadMassKg * adcsFraction

	// 8. Battery mass — class-dependent storage requirement.
	storageKWh := classAEclipseStorageFactor * siliconPowerKW
	if req.Class == model.ClassB {
		storageKWh = classBSafeModeStorageFactor * siliconPowerKW
	}
	battery := curves.BatterySpec(req.Year)
	batteryMassKg := 0.0
	if battery.DensityWhPerKg > 0 {
		batteryMassKg = (storageKWh * 1000.0) / battery.DensityWhPerKg
	}

	// 9. Propulsion: proportional to drag area and lifetime.
	dragAreaM2 := solarAreaM2 + radiatorAreaM2
	propulsionMassKg := dragAreaM2 * propulsionMassPerM2PerYear * float64(req.LifeYears)

	// 10. Other mass: wiring, brackets, thermal hardware.
	otherMassKg := payloadMassKg * otherFraction

	mass := model.MassBreakdown{
		SiliconKg:          siliconMassKg,
		SolarArrayKg:       solarArrayMassKg,
		RadiatorKg:         radiatorMassKg,
		ShieldingKg:        shieldingMassKg,
		AvionicsKg:         avionicsMassKg,
		BatteryKg:          batteryMassKg,
		ADCSKg:             adcsMassKg,
		PropulsionKg:       propulsionMassKg,
		StructureKg:        structureMassKg,
		PowerElectronicsKg: powerElectronicsMassKg,
		OtherKg:            otherMassKg,
	}
	totalMassKg := floats.Sum([]float64{
		mass.SiliconKg, mass.SolarArrayKg, mass.RadiatorKg, mass.ShieldingKg,
		mass.AvionicsKg, mass.BatteryKg, mass.ADCSKg, mass.PropulsionKg,
		mass.StructureKg, mass.PowerElectronicsKg, mass.OtherKg,
	})

	// 11. Radiation derating.
	radiation := curves.RadiationModel(req.Year, req.Shell)
	shielding := nonZero(req.ShieldingThicknessMM)
	tidKrad := radiation.TIDPerYear * float64(req.LifeYears) / shielding
	derate := clamp(1.0-math.Max(0, tidKrad-tidDerateFloorKrad)/tidDerateSpanKrad, 0.4, 1.0)
	annualFailureProb := clamp(radiation.ProtonFluxRelative/math.Sqrt(shielding)*0.02, 0, 1)

	computeNominalTFLOPs := req.TargetTFLOPs
	computeDeratedTFLOPs := computeNominalTFLOPs * derate

	return model.BusDesign{
		Class:                    req.Class,
		Mass:                     mass,
		TotalMassKg:              totalMassKg,
		RadiatorAreaM2:           radiatorAreaM2,
		SolarArrayAreaM2:         solarAreaM2,
		BusPowerKW:               siliconPowerKW / (1.0 - electricalLossFraction),
		ComputeNominalTFLOPs:     computeNominalTFLOPs,
		ComputeDeratedTFLOPs:     computeDeratedTFLOPs,
		AnnualFailureProbability: annualFailureProb,
		Availability:             1.0 - 0.5*annualFailureProb,
		StorageKWh:               storageKWh,
	}
}

// radiatorAreaFromFlux solves ε·σ·A·(T_hot^4 - T_sink^4) = heatKW*1000 for A
// directly — area is linear in required heat rejection at fixed ΔT^4, so no
// iterative root-find is needed.
func radiatorAreaFromFlux(heatKW, hotTempK float64) float64 {
	const emissivity = 0.90
	fluxWPerM2 := emissivity * stefanBoltzmann * (math.Pow(hotTempK, 4) - math.Pow(sinkTempK, 4))
	if fluxWPerM2 <= 0 {
		return 0
	}
	return (heatKW * 1000.0) / fluxWPerM2
}

func solarArray(siliconPowerKW float64, req DesignRequest) (areaM2, massKg float64) {
	effectiveEfficiency := req.PanelEfficiency * (1.0 - req.DegradationOverLife)
	if effectiveEfficiency <= 0 {
		effectiveEfficiency = 0.01
	}
	requiredPowerW := siliconPowerKW * 1000.0 / (1.0 - electricalLossFraction)
	areaM2 = requiredPowerW / (req.SolarConstantWPerM2 * effectiveEfficiency)
	massKg = (requiredPowerW / 1000.0) * solarMassPerKW
	return areaM2, massKg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
