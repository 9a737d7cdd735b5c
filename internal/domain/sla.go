package domain

import (
	"math"
	"time"
)

// SLALevel classifies an order against its confirmation deadline
type SLALevel string

const (
	SLALevelSafe    SLALevel = "safe"
	SLALevelWarning SLALevel = "warning"
	SLALevelExpired SLALevel = "expired"
	SLALevelUnknown SLALevel = "unknown"
)

// Urgency classifies how urgently an order needs attention
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyCritical Urgency = "critical"
)

// SLAStatus is the evaluated deadline state of an order. Urgency is empty
// for the unknown level: with no configured rule there is nothing to rank.
type SLAStatus struct {
	Level   SLALevel `json:"level"`
	Urgency Urgency  `json:"urgency,omitempty"`
}

// warningRatio is the early-warning band before the hard deadline: an order
// past 80% of its confirmation window flags as warning.
const warningRatio = 0.8

// Carrier suggestion value thresholds, in VND
const (
	websiteHighValueVND = 2_000_000
	shopeeLowValueVND   = 500_000
)

// SuggestCarrier picks a carrier for an order from the fixed routing rule
// table. Rules are evaluated in order, first match wins; unrecognized
// platforms fall through to the default.
func SuggestCarrier(order Order) Carrier {
	switch {
	case order.Platform == PlatformTikTok:
		return CarrierJTExpress
	case order.Platform == PlatformWebsite && order.OrderValue > websiteHighValueVND:
		return CarrierJTExpress
	case order.Platform == PlatformShopee && order.OrderValue < shopeeLowValueVND:
		return CarrierGHTK
	default:
		return CarrierViettelPost
	}
}

// CalculateSLAStatus evaluates an order's confirmation deadline at the given
// time. A (platform, carrier) pair missing from the matrix yields the
// unknown level. Elapsed time is fractional; an order time in the future
// gives negative elapsed hours and lands in the safe branch.
func CalculateSLAStatus(order Order, matrix DeadlineMatrix, now time.Time) SLAStatus {
	deadline, ok := matrix.Lookup(order.Platform, order.SuggestedCarrier)
	if !ok {
		return SLAStatus{Level: SLALevelUnknown}
	}

	hoursSinceOrder := now.Sub(order.OrderTime).Hours()

	switch {
	case hoursSinceOrder > deadline.ConfirmHours:
		return SLAStatus{Level: SLALevelExpired, Urgency: UrgencyCritical}
	case hoursSinceOrder > warningRatio*deadline.ConfirmHours:
		return SLAStatus{Level: SLALevelWarning, Urgency: UrgencyMedium}
	default:
		return SLAStatus{Level: SLALevelSafe, Urgency: UrgencyLow}
	}
}

// CalculateTimeRemaining returns the hours left until the order's
// confirmation deadline, clamped at zero once the deadline has passed.
// The second return is false when no deadline is configured for the
// (platform, carrier) pair; callers must handle the absent case explicitly
// rather than receiving an infinity sentinel.
func CalculateTimeRemaining(order Order, matrix DeadlineMatrix, now time.Time) (float64, bool) {
	deadline, ok := matrix.Lookup(order.Platform, order.SuggestedCarrier)
	if !ok {
		return 0, false
	}

	deadlineTime := order.OrderTime.Add(time.Duration(deadline.ConfirmHours * float64(time.Hour)))
	remaining := deadlineTime.Sub(now).Hours()
	if remaining < 0 {
		return 0, true
	}
	return remaining, true
}

// CalculatePriority computes the triage score for an order. Higher scores
// sort first; the score only orders orders within one evaluation pass and
// carries no absolute meaning.
func CalculatePriority(order Order, timeRemainingHours float64, hasDeadline bool) float64 {
	platformScore := order.Platform.Weight()

	urgencyScore := 1.0
	if hasDeadline {
		switch {
		case timeRemainingHours < 1:
			urgencyScore = 10
		case timeRemainingHours < 4:
			urgencyScore = 5
		}
	}

	// Value capped so large orders cannot dominate the score unboundedly
	valueScore := math.Min(order.OrderValue/1_000_000, 3)

	return platformScore*3 + urgencyScore*2 + valueScore
}

// EvaluatedOrder is the derived, never-persisted evaluation result for one
// order at one point in time
type EvaluatedOrder struct {
	Order
	Status             SLAStatus `json:"slaStatus"`
	TimeRemainingHours float64   `json:"timeRemainingHours"`
	HasDeadline        bool      `json:"hasDeadline"`
	Priority           float64   `json:"priority"`
	EvaluatedAt        time.Time `json:"evaluatedAt"`
}

// Evaluate runs the full SLA evaluation for one order at the given time,
// assigning a suggested carrier first if the order has none. Pure: the same
// order, matrix and clock reading always produce the same result.
func Evaluate(order Order, matrix DeadlineMatrix, now time.Time) EvaluatedOrder {
	if order.SuggestedCarrier == "" {
		order.SuggestedCarrier = SuggestCarrier(order)
	}

	remaining, hasDeadline := CalculateTimeRemaining(order, matrix, now)

	return EvaluatedOrder{
		Order:              order,
		Status:             CalculateSLAStatus(order, matrix, now),
		TimeRemainingHours: remaining,
		HasDeadline:        hasDeadline,
		Priority:           CalculatePriority(order, remaining, hasDeadline),
		EvaluatedAt:        now,
	}
}
