// Package members owns the member registry: registration, attendance,
// renewals and retention nudges.
package members

import (
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/metrics"
	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Status is the member engagement tag. It is an enumerated type set at
// the ingestion boundary; nothing downstream derives state from free
// text.
type Status string

const (
	// StatusActive is the default engagement state.
	StatusActive Status = "ACTIVE"
	// StatusNudgeSent marks members the retention job has messaged.
	StatusNudgeSent Status = "NUDGE_SENT"
)

// Member is one registry row. Weight and height arrive as free text from
// intake forms and legacy imports; they are stored verbatim and parsed
// only at the metrics boundary.
type Member struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Weight       string `json:"weight"`
	Height       string `json:"height"`
	Address      string `json:"address"`
	PlanName     string `json:"plan_name"`
	AmountPaid   string `json:"amount_paid"`
	SubExpiry    string `json:"sub_expiry"`
	LastSeenDays int    `json:"last_seen_days"`
	PresentToday bool   `json:"isPresentToday"`
	Status       Status `json:"status"`
}

// View is a member with the derived subscription health attached. Health
// is recomputed against the current clock on every read.
type View struct {
	Member
	Health metrics.SubscriptionHealth `json:"health"`
}

// RegisterInput describes a new member signup.
type RegisterInput struct {
	Name       string
	Mobile     string
	Email      string
	Weight     string
	Height     string
	Address    string
	PlanName   string
	AmountPaid string
	SubExpiry  string
}

// RenewalReceipt confirms a subscription renewal and the amount charged.
type RenewalReceipt struct {
	Member  Member  `json:"member"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

// ErrNotFound indicates the member does not exist.
var ErrNotFound = fmt.Errorf("members: member %w", httpx.ErrNotFound)
