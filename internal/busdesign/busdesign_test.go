package busdesign

import (
	"math"
	"testing"

	"github.com/orbitalcompute/ocse/internal/model"
)

func baseRequest() DesignRequest {
	return DesignRequest{
		Year:                 2025,
		Class:                model.ClassA,
		Shell:                model.ShellLowLEO,
		TargetTFLOPs:         1000,
		WattsPerTFLOP:        40,
		TFLOPsPerKg:          10,
		ShieldingThicknessMM: 5,
		LifeYears:            5,
		RadiatorHotTempK:     350,
		SolarConstantWPerM2:  1361,
		PanelEfficiency:      0.30,
		DegradationOverLife:  0.15,
	}
}

func TestDesignMassSumInvariant(t *testing.T) {
	d := Design(baseRequest())
	sum := d.Mass.Sum()
	if math.Abs(sum-d.TotalMassKg) > d.TotalMassKg*0.001+1e-9 {
		t.Errorf("mass sum %v does not match TotalMassKg %v", sum, d.TotalMassKg)
	}
}

func TestDesignDeratedNeverExceedsNominal(t *testing.T) {
	d := Design(baseRequest())
	if d.ComputeDeratedTFLOPs > d.ComputeNominalTFLOPs {
		t.Errorf("derated %v exceeds nominal %v", d.ComputeDeratedTFLOPs, d.ComputeNominalTFLOPs)
	}
}

func TestDesignAvailabilityFormula(t *testing.T) {
	d := Design(baseRequest())
	want := 1.0 - 0.5*d.AnnualFailureProbability
	if math.Abs(d.Availability-want) > 1e-9 {
		t.Errorf("availability %v, want %v", d.Availability, want)
	}
}

func TestDesignClassBStoresLessThanClassA(t *testing.T) {
	reqA := baseRequest()
	reqB := baseRequest()
	reqB.Class = model.ClassB

	designA := Design(reqA)
	designB := Design(reqB)

	if designB.StorageKWh >= designA.StorageKWh {
		t.Errorf("class B storage %v should be less than class A storage %v", designB.StorageKWh, designA.StorageKWh)
	}
}

func TestDesignHeavierShieldingImprovesFailureProbability(t *testing.T) {
	thin := baseRequest()
	thin.ShieldingThicknessMM = 2

	thick := baseRequest()
	thick.ShieldingThicknessMM = 20

	thinDesign := Design(thin)
	thickDesign := Design(thick)

	if thickDesign.AnnualFailureProbability >= thinDesign.AnnualFailureProbability {
		t.Errorf("thicker shielding should reduce failure probability: thin=%v thick=%v",
			thinDesign.AnnualFailureProbability, thickDesign.AnnualFailureProbability)
	}
}

func TestDesignPositiveMassAndArea(t *testing.T) {
	d := Design(baseRequest())
	if d.TotalMassKg <= 0 {
		t.Errorf("total mass should be positive, got %v", d.TotalMassKg)
	}
	if d.RadiatorAreaM2 <= 0 {
		t.Errorf("radiator area should be positive, got %v", d.RadiatorAreaM2)
	}
	if d.SolarArrayAreaM2 <= 0 {
		t.Errorf("solar array area should be positive, got %v", d.SolarArrayAreaM2)
	}
}
