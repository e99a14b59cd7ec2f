// Package economics implements the demand, cost-share, calibration, carbon,
// and blended-metrics model of spec §4.8.
package economics

import "math"

const minGroundShare = 0.20

// ShareRequest bundles the inputs to OrbitShare.
type ShareRequest struct {
	ComputeExportableFLOPS float64
	TotalDemandFLOPS        float64

	YearIndex int // years since base year

	ScenarioMultiplier float64 // bull 1.3, baseline 1.0, bear 0.6
	PreParityCap       float64
	PriorOrbitUnitCost float64
	PriorGroundUnitCost float64
	PriorOrbitShare     float64
}

// OrbitShare computes this year's orbit compute share: the physically
// achievable share clamped by the ramp cap and, pre-parity, by the
// scenario's parity gate.
func OrbitShare(req ShareRequest) float64 {
	physicalShare := clamp(ratio(req.ComputeExportableFLOPS, req.TotalDemandFLOPS), 0, 1)

	rampCap := clamp((1-math.Exp(-float64(req.YearIndex)/6.0))*req.ScenarioMultiplier, 0, 0.95)

	share := math.Min(physicalShare, rampCap)

	parityReached := req.PriorOrbitUnitCost > 0 && req.PriorOrbitUnitCost < 0.95*req.PriorGroundUnitCost
	if !parityReached {
		if share > req.PreParityCap {
			share = req.PreParityCap
		}
		share = capAnnualGrowth(req.PriorOrbitShare, share, 0.03, 0.05)
	} else {
		share = capAnnualGrowth(req.PriorOrbitShare, share, 0.05, 0.12)
	}

	share = math.Min(share, 1-minGroundShare)

	if share < 1e-3 {
		share = 0
	}
	return share
}

// capAnnualGrowth limits a share's year-over-year increase to [minGrowth,
// maxGrowth] of the prior share, never limiting a decrease.
func capAnnualGrowth(prior, proposed, minGrowth, maxGrowth float64) float64 {
	if proposed <= prior {
		return proposed
	}
	maxAllowed := prior + prior*maxGrowth
	if prior == 0 {
		maxAllowed = maxGrowth // first ramp year has no prior base to grow from
	}
	if proposed > maxAllowed {
		return maxAllowed
	}
	minAllowed := prior + prior*minGrowth
	if proposed < minAllowed && minAllowed <= maxAllowed {
		return minAllowed
	}
	return proposed
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
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
