package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-platform/sla-service/internal/domain"
	"github.com/wms-platform/sla-service/internal/infrastructure/memory"
	"github.com/wms-platform/sla-service/pkg/logging"
	"github.com/wms-platform/sla-service/pkg/metrics"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *EvaluationService {
	t.Helper()

	logConfig := logging.DefaultConfig("sla-service-test")
	logConfig.Output = io.Discard

	return NewEvaluationService(
		memory.NewOrderStore(),
		memory.NewMatrixStore(domain.DefaultDeadlineMatrix()),
		logging.New(logConfig),
		metrics.New(metrics.DefaultConfig("sla-service-test")),
		func() time.Time { return fixedNow },
	)
}

func ingestFixture(t *testing.T, service *EvaluationService) {
	t.Helper()

	_, err := service.IngestOrders(context.Background(), IngestOrdersCommand{
		Orders: []OrderInput{
			{OrderID: "ORD-SAFE", Customer: "Nguyen Van An", Platform: "shopee", OrderTime: fixedNow.Add(-time.Hour).Format(time.RFC3339), OrderValue: 300_000},
			{OrderID: "ORD-EXPIRED", Customer: "Le Hoang Cuong", Platform: "tiktok", OrderTime: fixedNow.Add(-5 * time.Hour).Format(time.RFC3339), OrderValue: 800_000},
			{OrderID: "ORD-UNKNOWN", Customer: "Ngo Thi Lan", Platform: "amazon", OrderTime: fixedNow.Add(-time.Hour).Format(time.RFC3339), OrderValue: 900_000},
		},
	})
	require.NoError(t, err)
}

func TestIngestOrdersNormalization(t *testing.T) {
	service := newTestService(t)

	result, err := service.IngestOrders(context.Background(), IngestOrdersCommand{
		Orders: []OrderInput{
			{OrderID: "ORD-1", Platform: "  Shopee ", OrderTime: "2025-06-15 08:30", OrderValue: 250_000},
			{OrderID: "ORD-2", Platform: "tiktok", OrderTime: "not-a-timestamp", OrderValue: -100},
			{OrderID: "ORD-3", Platform: "website", OrderValue: 3_000_000, Carrier: "j&t express"},
			{OrderID: "", Platform: "shopee"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 4")

	orders, err := service.ListEvaluated(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, orders, 3)

	byID := make(map[string]EvaluatedOrderDTO, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}

	// platform normalized, parsed timestamp honored
	assert.Equal(t, "shopee", byID["ORD-1"].Platform)
	assert.Equal(t, fixedNow.Add(-210*time.Minute).Truncate(time.Minute), byID["ORD-1"].OrderTime.Truncate(time.Minute))

	// unparseable timestamp defaults to now; negative value clamps to zero
	assert.Equal(t, fixedNow, byID["ORD-2"].OrderTime)
	assert.Zero(t, byID["ORD-2"].OrderValue)

	// preassigned carrier kept and canonicalized
	assert.Equal(t, "J&T Express", byID["ORD-3"].SuggestedCarrier)
}

func TestIngestOrdersAllRejected(t *testing.T) {
	service := newTestService(t)

	_, err := service.IngestOrders(context.Background(), IngestOrdersCommand{
		Orders: []OrderInput{{OrderID: "", Platform: "shopee"}},
	})
	assert.Error(t, err)
}

func TestIngestOrdersAppendMode(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	_, err := service.IngestOrders(context.Background(), IngestOrdersCommand{
		Mode: IngestModeAppend,
		Orders: []OrderInput{
			{OrderID: "ORD-4", Platform: "lazada", OrderValue: 500_000},
		},
	})
	require.NoError(t, err)

	orders, err := service.ListEvaluated(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Len(t, orders, 4)
}

func TestListEvaluatedSortsByPriorityDescending(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	orders, err := service.ListEvaluated(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, orders, 3)

	for i := 1; i < len(orders); i++ {
		assert.GreaterOrEqual(t, orders[i-1].Priority, orders[i].Priority)
	}

	// The expired TikTok order scores highest: weight 3, zero time remaining
	assert.Equal(t, "ORD-EXPIRED", orders[0].OrderID)
	assert.Equal(t, "expired", orders[0].SLALevel)
	assert.Equal(t, "critical", orders[0].Urgency)
}

func TestListEvaluatedFilters(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)
	ctx := context.Background()

	byPlatform, err := service.ListEvaluated(ctx, ListQuery{Platform: "shopee"})
	require.NoError(t, err)
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "ORD-SAFE", byPlatform[0].OrderID)

	byLevel, err := service.ListEvaluated(ctx, ListQuery{Level: "unknown"})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "ORD-UNKNOWN", byLevel[0].OrderID)
	assert.Nil(t, byLevel[0].TimeRemainingHours)
	assert.Equal(t, "—", byLevel[0].TimeRemainingLabel)

	bySearch, err := service.ListEvaluated(ctx, ListQuery{Search: "cuong"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "ORD-EXPIRED", bySearch[0].OrderID)

	limited, err := service.ListEvaluated(ctx, ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSummaryCounts(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 1, summary.CountsByLevel["safe"])
	assert.Equal(t, 1, summary.CountsByLevel["expired"])
	assert.Equal(t, 1, summary.CountsByLevel["unknown"])
	assert.Zero(t, summary.CountsByLevel["warning"])
	require.Len(t, summary.CriticalOrders, 1)
	assert.Equal(t, "ORD-EXPIRED", summary.CriticalOrders[0].OrderID)
	assert.Equal(t, fixedNow, summary.GeneratedAt)
}

func TestUpdateMatrixChangesEvaluation(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)
	ctx := context.Background()

	// Shrink the shopee/GHTK window so the safe order flips to expired
	_, err := service.UpdateMatrix(ctx, UpdateMatrixCommand{
		Entries: map[string]map[string]MatrixEntryInput{
			"shopee": {"GHTK": {ConfirmHours: 0.5, HandoverHours: 1}},
			"tiktok": {"J&T Express": {ConfirmHours: 4, HandoverHours: 12}},
		},
	})
	require.NoError(t, err)

	orders, err := service.ListEvaluated(ctx, ListQuery{Platform: "shopee"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "expired", orders[0].SLALevel)
}

func TestUpdateMatrixRejectsInvalidHours(t *testing.T) {
	service := newTestService(t)

	_, err := service.UpdateMatrix(context.Background(), UpdateMatrixCommand{
		Entries: map[string]map[string]MatrixEntryInput{
			"shopee": {"GHTK": {ConfirmHours: -1, HandoverHours: 1}},
		},
	})
	assert.Error(t, err)

	// original matrix untouched on rejection
	deadline, ok := service.GetMatrix(context.Background()).Lookup(domain.PlatformShopee, domain.CarrierGHTK)
	require.True(t, ok)
	assert.Equal(t, 48.0, deadline.ConfirmHours)
}

func TestClearOrders(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	cleared := service.ClearOrders(context.Background())
	assert.Equal(t, 3, cleared)

	orders, err := service.ListEvaluated(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLoadDemoOrders(t *testing.T) {
	service := newTestService(t)

	count, err := service.LoadDemoOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(demoSeeds), count)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, count, summary.TotalOrders)

	// the demo set exercises every band
	assert.Positive(t, summary.CountsByLevel["safe"])
	assert.Positive(t, summary.CountsByLevel["warning"])
	assert.Positive(t, summary.CountsByLevel["expired"])
	assert.Positive(t, summary.CountsByLevel["unknown"])
}

func TestEvaluateAllReportsCounts(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	counts := service.EvaluateAll(context.Background())

	assert.Equal(t, 1, counts[domain.SLALevelSafe])
	assert.Equal(t, 1, counts[domain.SLALevelExpired])
	assert.Equal(t, 1, counts[domain.SLALevelUnknown])
}
