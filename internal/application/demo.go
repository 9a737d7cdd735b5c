package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wms-platform/sla-service/internal/domain"
)

// demoSeed describes one generated demo order relative to the current clock
type demoSeed struct {
	customer  string
	platform  domain.Platform
	value     float64
	placedAgo time.Duration
}

// demoSeeds covers every SLA band: safe, warning, expired and an
// unconfigured platform that evaluates to unknown
var demoSeeds = []demoSeed{
	{"Nguyen Van An", domain.PlatformShopee, 320_000, 1 * time.Hour},
	{"Tran Thi Binh", domain.PlatformShopee, 1_450_000, 40 * time.Hour},
	{"Le Hoang Cuong", domain.PlatformTikTok, 780_000, 30 * time.Minute},
	{"Pham Minh Duc", domain.PlatformTikTok, 2_100_000, 210 * time.Minute},
	{"Hoang Thi Em", domain.PlatformTikTok, 650_000, 6 * time.Hour},
	{"Vo Van Phuc", domain.PlatformWebsite, 2_500_000, 2 * time.Hour},
	{"Dang Thu Giang", domain.PlatformWebsite, 890_000, 22 * time.Hour},
	{"Bui Quang Huy", domain.PlatformLazada, 1_100_000, 5 * time.Hour},
	{"Ngo Thi Lan", domain.Platform("sendo"), 450_000, 3 * time.Hour},
}

// LoadDemoOrders replaces the order list with a generated demo set so the
// dashboard has data before any upload
func (s *EvaluationService) LoadDemoOrders(ctx context.Context) (int, error) {
	now := s.clock()
	orders := make([]domain.Order, 0, len(demoSeeds))

	for _, seed := range demoSeeds {
		orderID := fmt.Sprintf("DEMO-%s", uuid.New().String()[:8])
		order, err := domain.NewOrder(orderID, seed.customer, seed.platform, now.Add(-seed.placedAgo), seed.value)
		if err != nil {
			return 0, fmt.Errorf("failed to build demo order: %w", err)
		}
		orders = append(orders, order)
		s.metrics.RecordOrderIngested(order.Platform.String(), "demo")
	}

	s.orders.Replace(orders)
	s.logger.Event(ctx, "orders.demo_loaded", map[string]any{"count": len(orders)})

	return len(orders), nil
}
