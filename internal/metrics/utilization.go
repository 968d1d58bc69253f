package metrics

// RiskTier grades how close a resource is to its service threshold.
type RiskTier string

const (
	// TierNominal means the resource is well inside its limit.
	TierNominal RiskTier = "NOMINAL"
	// TierWarning means usage passed UtilizationWarningRatio.
	TierWarning RiskTier = "WARNING"
	// TierCritical means usage passed UtilizationCriticalRatio, or the
	// limit itself is missing.
	TierCritical RiskTier = "CRITICAL"
)

// ClassifyUtilization grades a used/limit ratio. A non-positive limit
// classifies as critical: a unit with no service threshold can never be
// flagged by ratio, and that is the unsafe configuration.
func ClassifyUtilization(used, limit float64) RiskTier {
	if limit <= 0 {
		return TierCritical
	}
	ratio := used / limit
	switch {
	case ratio > UtilizationCriticalRatio:
		return TierCritical
	case ratio > UtilizationWarningRatio:
		return TierWarning
	default:
		return TierNominal
	}
}

// LowStock reports whether an inventory item needs restocking. Inventory
// alerting is binary while equipment is graded into tiers; restock is a
// purchasing action with no intermediate severity, so the two signals
// intentionally differ in shape.
func LowStock(stock, threshold int) bool {
	return stock <= threshold
}
