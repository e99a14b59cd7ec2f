package economics

// BlendRequest bundles the orbit and ground metrics to be share-weighted.
type BlendRequest struct {
	OrbitShare float64

	GroundCostUSDPerPFLOP float64
	OrbitCostUSDPerPFLOP  float64

	GroundOPEXUSD float64
	OrbitOPEXUSD  float64

	GroundLatencyMs float64
	OrbitLatencyMs  float64
}

// BlendResult is the share-weighted blended metric set, plus the per-domain
// OPEX figures that went into the blend (spec's Data Model requires the
// entry to carry ground/orbit/mix economics as distinct fields, not just
// the mix).
type BlendResult struct {
	BlendedCostUSDPerPFLOP float64
	BlendedOPEXUSD         float64
	BlendedLatencyMs       float64

	GroundOPEXUSD float64
	OrbitOPEXUSD  float64
}

// Blend linearly weights ground and orbit metrics by orbit share.
func Blend(req BlendRequest) BlendResult {
	groundShare := 1 - req.OrbitShare
	return BlendResult{
		BlendedCostUSDPerPFLOP: req.OrbitShare*req.OrbitCostUSDPerPFLOP + groundShare*req.GroundCostUSDPerPFLOP,
		BlendedOPEXUSD:         req.OrbitShare*req.OrbitOPEXUSD + groundShare*req.GroundOPEXUSD,
		BlendedLatencyMs:       req.OrbitShare*req.OrbitLatencyMs + groundShare*req.GroundLatencyMs,
		GroundOPEXUSD:          req.GroundOPEXUSD,
		OrbitOPEXUSD:           req.OrbitOPEXUSD,
	}
}

// TotalDemandFLOPS returns demand for a given year index, compounding the
// scenario's demand growth rate from a base-year demand figure.
func TotalDemandFLOPS(baseDemandFLOPS, demandGrowthPerYear float64, yearIndex int) float64 {
	demand := baseDemandFLOPS
	for i := 0; i < yearIndex; i++ {
		demand *= demandGrowthPerYear
	}
	return demand
}
