// Package equipment tracks the machine fleet: usage hours against rated
// service intervals, and the servicing that resets them.
package equipment

import (
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Status is the maintenance state shown on the fleet board.
type Status string

const (
	StatusOptimal      Status = "Optimal"
	StatusWarning      Status = "Warning"
	StatusNeedsService Status = "Needs Service"
)

// StatusFor maps a utilization tier to the board label.
func StatusFor(tier metrics.RiskTier) Status {
	switch tier {
	case metrics.TierCritical:
		return StatusNeedsService
	case metrics.TierWarning:
		return StatusWarning
	default:
		return StatusOptimal
	}
}

// Unit is one machine. MaxHours is the rated service interval; UsageHours
// accumulates until a service resets it.
type Unit struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	UsageHours float64 `json:"usage_hours"`
	MaxHours   float64 `json:"max_hours"`
	Status     Status  `json:"status"`
}

// View is a unit with the derived utilization tier attached.
type View struct {
	Unit
	Tier metrics.RiskTier `json:"tier"`
}

// ErrNotFound indicates the unit does not exist.
var ErrNotFound = fmt.Errorf("equipment: unit %w", httpx.ErrNotFound)
