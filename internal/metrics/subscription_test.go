package metrics

import (
	"testing"
	"time"
)

func TestClassifySubscription(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		expiry   string
		want     SubscriptionState
		wantDays int
	}{
		{"three days out is expiring", "13 Mar 2025", SubscriptionExpiring, 3},
		{"boundary of warning band", "15 Mar 2025", SubscriptionExpiring, 5},
		{"ten days out is active", "20 Mar 2025", SubscriptionActive, 10},
		{"one day past is expired", "09 Mar 2025", SubscriptionExpired, -1},
		{"same day is expiring with zero days", "10 Mar 2025", SubscriptionExpiring, 0},
		{"iso layout accepted", "2025-03-13", SubscriptionExpiring, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySubscription(tc.expiry, now)
			if got.State != tc.want {
				t.Fatalf("expected state %s got %s", tc.want, got.State)
			}
			if got.DaysLeft != tc.wantDays {
				t.Fatalf("expected %d days got %d", tc.wantDays, got.DaysLeft)
			}
		})
	}
}

func TestClassifySubscriptionFailsOpen(t *testing.T) {
	now := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	for _, expiry := range []string{"", "lifetime", "31/02/2025", "next month"} {
		got := ClassifySubscription(expiry, now)
		if got.State != SubscriptionActive {
			t.Fatalf("expiry %q: expected fail-open active got %s", expiry, got.State)
		}
	}
}

func TestClassifySubscriptionDeterministic(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 30, 0, 0, time.UTC)
	a := ClassifySubscription("13 Mar 2025", now)
	b := ClassifySubscription("13 Mar 2025", now)
	if a != b {
		t.Fatalf("same input diverged: %+v vs %+v", a, b)
	}
}
