// Package metrics implements the derived-metrics engine: pure transforms
// from fetched entity snapshots to the classified values the dashboards
// display. Nothing in this package performs I/O or holds state; callers
// recompute on every read with the latest snapshot.
package metrics

// Classification thresholds shared across the engine and the overview
// summarizer. Several modules and their tests reference these, so they
// live here rather than inline at each call site.
const (
	// ChurnRiskDays is the number of days without a visit after which a
	// member counts as churn risk.
	ChurnRiskDays = 4

	// ExpiryWarningDays bounds the "expiring soon" band on subscription
	// health. An expiry within this many days is surfaced as a renewal
	// prompt rather than a hard alert.
	ExpiryWarningDays = 5

	// UtilizationCriticalRatio and UtilizationWarningRatio grade a
	// used/limit ratio into service tiers.
	UtilizationCriticalRatio = 0.9
	UtilizationWarningRatio  = 0.7

	// ForecastDamping scales the last observed slope when projecting the
	// next biometric point. Raw linear extrapolation overshoots on noisy
	// gym data, so the projected step is deliberately shortened.
	ForecastDamping = 0.8
)
