package metrics

import (
	"math"
	"strings"
	"time"
)

// SubscriptionState classifies a member's subscription against its expiry.
type SubscriptionState string

const (
	// SubscriptionActive means the membership is current (or the expiry
	// record is unreadable, which classifies as active by design).
	SubscriptionActive SubscriptionState = "ACTIVE"
	// SubscriptionExpiring means the membership lapses within
	// ExpiryWarningDays.
	SubscriptionExpiring SubscriptionState = "EXPIRING"
	// SubscriptionExpired means the expiry date has passed.
	SubscriptionExpired SubscriptionState = "EXPIRED"
)

// expiryLayouts are the date formats member records are known to carry.
// The first entry is the canonical format written on renewal; the rest
// cover imports from older registries.
var expiryLayouts = []string{
	"02 Jan 2006",
	"2 Jan 2006",
	"2006-01-02",
}

// SubscriptionHealth is the classified view of one expiry date.
type SubscriptionHealth struct {
	State SubscriptionState `json:"state"`
	// DaysLeft is the whole number of days until expiry, rounded up.
	// Negative once expired. Zero-valued when the expiry was unreadable.
	DaysLeft int `json:"days_left"`
}

// ClassifySubscription maps an expiry string to a health state relative to
// the supplied reference time. The caller injects "now" so classification
// stays deterministic; results must be recomputed as the clock advances.
//
// An unparseable expiry classifies as active: legacy rows without a
// structured date must never lock a paying member out of the floor.
func ClassifySubscription(expiry string, now time.Time) SubscriptionHealth {
	var parsed time.Time
	ok := false
	trimmed := strings.TrimSpace(expiry)
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return SubscriptionHealth{State: SubscriptionActive}
	}

	diffDays := int(math.Ceil(parsed.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return SubscriptionHealth{State: SubscriptionExpired, DaysLeft: diffDays}
	case diffDays <= ExpiryWarningDays:
		return SubscriptionHealth{State: SubscriptionExpiring, DaysLeft: diffDays}
	default:
		return SubscriptionHealth{State: SubscriptionActive, DaysLeft: diffDays}
	}
}
