// Package analytics serves biometric trend reports derived from the
// transformation history captured at check-in.
package analytics

import (
	"errors"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
)

// Report is the trend payload served per member. The projection is
// recomputed from the stored series on demand and cached until the next
// sample lands.
type Report struct {
	MemberID int64 `json:"member_id"`
	metrics.TrendReport
}

// ErrUnknownHorizon indicates an unsupported horizon selector.
var ErrUnknownHorizon = errors.New("analytics: unknown horizon")

// ParseHorizon maps the query selector to a window size. The dashboard
// sends "6m", "1y" or "all"; an empty selector means the full series.
func ParseHorizon(raw string) (metrics.Horizon, error) {
	switch raw {
	case "", "all":
		return metrics.HorizonAll, nil
	case "6m":
		return metrics.HorizonSixMonths, nil
	case "1y":
		return metrics.HorizonOneYear, nil
	default:
		return 0, ErrUnknownHorizon
	}
}
