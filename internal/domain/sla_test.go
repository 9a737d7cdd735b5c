package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func orderAt(platform Platform, value float64, placedAgo time.Duration) Order {
	order, err := NewOrder("ORD-001", "Nguyen Van A", platform, testNow.Add(-placedAgo), value)
	if err != nil {
		panic(err)
	}
	return order
}

func TestSuggestCarrier(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		value    float64
		expected Carrier
	}{
		{"tiktok always routes to J&T", PlatformTikTok, 100_000, CarrierJTExpress},
		{"tiktok high value still J&T", PlatformTikTok, 5_000_000, CarrierJTExpress},
		{"website over threshold routes to J&T", PlatformWebsite, 2_500_000, CarrierJTExpress},
		{"website at threshold falls to default", PlatformWebsite, 2_000_000, CarrierViettelPost},
		{"website low value falls to default", PlatformWebsite, 300_000, CarrierViettelPost},
		{"shopee under threshold routes to GHTK", PlatformShopee, 300_000, CarrierGHTK},
		{"shopee at threshold falls to default", PlatformShopee, 500_000, CarrierViettelPost},
		{"shopee high value falls to default", PlatformShopee, 1_200_000, CarrierViettelPost},
		{"lazada falls to default", PlatformLazada, 900_000, CarrierViettelPost},
		{"unrecognized platform falls to default", Platform("amazon"), 900_000, CarrierViettelPost},
		{"zero value shopee routes to GHTK", PlatformShopee, 0, CarrierGHTK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := orderAt(tt.platform, tt.value, time.Hour)
			assert.Equal(t, tt.expected, SuggestCarrier(order))
		})
	}
}

func TestCalculateSLAStatusBands(t *testing.T) {
	matrix := DeadlineMatrix{
		PlatformShopee: {CarrierGHTK: {ConfirmHours: 10, HandoverHours: 20}},
	}

	tests := []struct {
		name            string
		placedAgo       time.Duration
		expectedLevel   SLALevel
		expectedUrgency Urgency
	}{
		{"well inside window is safe", 2 * time.Hour, SLALevelSafe, UrgencyLow},
		{"exactly at warning threshold is safe", 8 * time.Hour, SLALevelSafe, UrgencyLow},
		{"past warning threshold is warning", 8*time.Hour + time.Minute, SLALevelWarning, UrgencyMedium},
		{"exactly at deadline is warning", 10 * time.Hour, SLALevelWarning, UrgencyMedium},
		{"past deadline is expired", 10*time.Hour + time.Minute, SLALevelExpired, UrgencyCritical},
		{"future order time is safe", -3 * time.Hour, SLALevelSafe, UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := orderAt(PlatformShopee, 100_000, tt.placedAgo)
			order.SuggestedCarrier = CarrierGHTK

			status := CalculateSLAStatus(order, matrix, testNow)
			assert.Equal(t, tt.expectedLevel, status.Level)
			assert.Equal(t, tt.expectedUrgency, status.Urgency)
		})
	}
}

func TestCalculateSLAStatusFractionalHours(t *testing.T) {
	// 30 minutes into a 0.5h window must compare as 0.5 > 0.4, not 0 > 0
	matrix := DeadlineMatrix{
		PlatformWebsite: {CarrierJTExpress: {ConfirmHours: 0.5, HandoverHours: 1}},
	}
	order := orderAt(PlatformWebsite, 2_500_000, 30*time.Minute)
	order.SuggestedCarrier = CarrierJTExpress

	status := CalculateSLAStatus(order, matrix, testNow)
	assert.Equal(t, SLALevelWarning, status.Level)
	assert.Equal(t, UrgencyMedium, status.Urgency)
}

func TestCalculateSLAStatusUnconfiguredPair(t *testing.T) {
	matrix := DefaultDeadlineMatrix()

	order := orderAt(Platform("amazon"), 900_000, time.Hour)
	order.SuggestedCarrier = SuggestCarrier(order)
	require.Equal(t, CarrierViettelPost, order.SuggestedCarrier)

	status := CalculateSLAStatus(order, matrix, testNow)
	assert.Equal(t, SLALevelUnknown, status.Level)
	assert.Empty(t, status.Urgency)
}

func TestCalculateTimeRemaining(t *testing.T) {
	matrix := DeadlineMatrix{
		PlatformShopee: {CarrierGHTK: {ConfirmHours: 48, HandoverHours: 72}},
	}

	t.Run("reports hours left", func(t *testing.T) {
		order := orderAt(PlatformShopee, 300_000, time.Hour)
		order.SuggestedCarrier = CarrierGHTK

		remaining, ok := CalculateTimeRemaining(order, matrix, testNow)
		require.True(t, ok)
		assert.InDelta(t, 47, remaining, 1e-9)
	})

	t.Run("clamps to zero past deadline", func(t *testing.T) {
		order := orderAt(PlatformShopee, 300_000, 100*time.Hour)
		order.SuggestedCarrier = CarrierGHTK

		remaining, ok := CalculateTimeRemaining(order, matrix, testNow)
		require.True(t, ok)
		assert.Zero(t, remaining)
	})

	t.Run("absent for unconfigured pair", func(t *testing.T) {
		order := orderAt(PlatformShopee, 300_000, time.Hour)
		order.SuggestedCarrier = CarrierNinjaVan

		_, ok := CalculateTimeRemaining(order, matrix, testNow)
		assert.False(t, ok)
	})
}

func TestCalculatePriority(t *testing.T) {
	tests := []struct {
		name          string
		platform      Platform
		value         float64
		timeRemaining float64
		hasDeadline   bool
		expected      float64
	}{
		// platformScore*3 + urgencyScore*2 + min(value/1M, 3)
		{"tiktok under an hour", PlatformTikTok, 500_000, 0.5, true, 3*3 + 10*2 + 0.5},
		{"tiktok under four hours", PlatformTikTok, 500_000, 2, true, 3*3 + 5*2 + 0.5},
		{"tiktok relaxed", PlatformTikTok, 500_000, 12, true, 3*3 + 1*2 + 0.5},
		{"website value capped at 3", PlatformWebsite, 10_000_000, 12, true, 2*3 + 1*2 + 3},
		{"shopee baseline", PlatformShopee, 0, 12, true, 1*3 + 1*2 + 0},
		{"unknown platform weighs like shopee", Platform("amazon"), 0, 12, true, 1*3 + 1*2 + 0},
		{"no deadline means baseline urgency", PlatformTikTok, 500_000, 0, false, 3*3 + 1*2 + 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := orderAt(tt.platform, tt.value, time.Hour)
			assert.InDelta(t, tt.expected, CalculatePriority(order, tt.timeRemaining, tt.hasDeadline), 1e-9)
		})
	}
}

func TestCalculatePriorityMonotonicInUrgency(t *testing.T) {
	order := orderAt(PlatformWebsite, 1_500_000, time.Hour)

	relaxed := CalculatePriority(order, 12, true)
	soon := CalculatePriority(order, 2, true)
	imminent := CalculatePriority(order, 0.25, true)

	assert.Greater(t, soon, relaxed)
	assert.Greater(t, imminent, soon)
}

func TestEvaluateExpiredTikTokOrder(t *testing.T) {
	// tiktok order placed 5h ago against a 4h confirm window
	matrix := DefaultDeadlineMatrix()
	order := orderAt(PlatformTikTok, 800_000, 5*time.Hour)

	evaluated := Evaluate(order, matrix, testNow)

	assert.Equal(t, CarrierJTExpress, evaluated.SuggestedCarrier)
	assert.Equal(t, SLALevelExpired, evaluated.Status.Level)
	assert.Equal(t, UrgencyCritical, evaluated.Status.Urgency)
	assert.True(t, evaluated.HasDeadline)
	assert.Zero(t, evaluated.TimeRemainingHours)
	assert.Equal(t, testNow, evaluated.EvaluatedAt)
}

func TestEvaluateSafeShopeeOrder(t *testing.T) {
	matrix := DefaultDeadlineMatrix()
	order := orderAt(PlatformShopee, 300_000, time.Hour)

	evaluated := Evaluate(order, matrix, testNow)

	assert.Equal(t, CarrierGHTK, evaluated.SuggestedCarrier)
	assert.Equal(t, SLALevelSafe, evaluated.Status.Level)
	assert.InDelta(t, 47, evaluated.TimeRemainingHours, 1e-9)
}

func TestEvaluateKeepsAssignedCarrier(t *testing.T) {
	matrix := DefaultDeadlineMatrix()
	order := orderAt(PlatformShopee, 300_000, time.Hour)
	order.SuggestedCarrier = CarrierGHN

	evaluated := Evaluate(order, matrix, testNow)

	assert.Equal(t, CarrierGHN, evaluated.SuggestedCarrier)
}

func TestEvaluateIsPure(t *testing.T) {
	matrix := DefaultDeadlineMatrix()
	order := orderAt(PlatformTikTok, 800_000, 2*time.Hour)

	first := Evaluate(order, matrix, testNow)
	second := Evaluate(order, matrix, testNow)
	assert.Equal(t, first, second)

	// A later clock reading moves the same order toward expiry
	later := Evaluate(order, matrix, testNow.Add(3*time.Hour))
	assert.Equal(t, SLALevelExpired, later.Status.Level)
	assert.Equal(t, SLALevelWarning, first.Status.Level)
}

func TestNewOrderValidation(t *testing.T) {
	t.Run("rejects empty ID", func(t *testing.T) {
		_, err := NewOrder("", "A", PlatformShopee, testNow, 100)
		assert.ErrorIs(t, err, ErrEmptyOrderID)
	})

	t.Run("rejects zero time", func(t *testing.T) {
		_, err := NewOrder("ORD-001", "A", PlatformShopee, time.Time{}, 100)
		assert.ErrorIs(t, err, ErrZeroOrderTime)
	})

	t.Run("clamps negative value", func(t *testing.T) {
		order, err := NewOrder("ORD-001", "A", PlatformShopee, testNow, -500)
		require.NoError(t, err)
		assert.Zero(t, order.OrderValue)
	})
}
