package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wms-platform/sla-service/internal/domain"
	"github.com/wms-platform/sla-service/pkg/errors"
	"github.com/wms-platform/sla-service/pkg/logging"
	"github.com/wms-platform/sla-service/pkg/metrics"
)

// OrderStore is the port for the in-memory order list
type OrderStore interface {
	Replace(orders []domain.Order)
	Append(orders []domain.Order)
	All() []domain.Order
	Count() int
	Clear()
}

// MatrixStore is the port for the current deadline matrix snapshot
type MatrixStore interface {
	Get() domain.DeadlineMatrix
	Swap(matrix domain.DeadlineMatrix)
}

// Accepted order time layouts, tried in order. Upload sources disagree:
// API clients send RFC3339, spreadsheet exports send the other two.
var orderTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

// EvaluationService owns order ingestion and SLA evaluation. The clock is
// injected so every evaluation of a fixed order list and matrix is
// deterministic under test.
type EvaluationService struct {
	orders  OrderStore
	matrix  MatrixStore
	logger  *logging.Logger
	metrics *metrics.Metrics
	clock   func() time.Time
}

// NewEvaluationService creates a new EvaluationService
func NewEvaluationService(
	orders OrderStore,
	matrix MatrixStore,
	logger *logging.Logger,
	m *metrics.Metrics,
	clock func() time.Time,
) *EvaluationService {
	if clock == nil {
		clock = time.Now
	}
	return &EvaluationService{
		orders:  orders,
		matrix:  matrix,
		logger:  logger,
		metrics: m,
		clock:   clock,
	}
}

// IngestOrders normalizes and loads a batch of upload rows. Rows with a
// missing or unparseable timestamp default to the current clock reading;
// rows without an ID are rejected and reported, not fatal.
func (s *EvaluationService) IngestOrders(ctx context.Context, cmd IngestOrdersCommand) (*IngestResultDTO, error) {
	now := s.clock()
	result := &IngestResultDTO{Total: len(cmd.Orders)}
	accepted := make([]domain.Order, 0, len(cmd.Orders))

	for i, input := range cmd.Orders {
		order, err := s.normalizeOrder(input, now)
		if err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		accepted = append(accepted, order)
		s.metrics.RecordOrderIngested(order.Platform.String(), "upload")
	}

	if len(accepted) == 0 {
		return nil, errors.ErrValidation("no valid orders in upload").
			WithDetail("rejected", fmt.Sprintf("%d", result.Rejected))
	}

	if cmd.Mode == IngestModeAppend {
		s.orders.Append(accepted)
	} else {
		s.orders.Replace(accepted)
	}
	result.Accepted = len(accepted)

	s.logger.Event(ctx, "orders.ingested", map[string]any{
		"accepted": result.Accepted,
		"rejected": result.Rejected,
		"mode":     cmd.Mode,
	})

	return result, nil
}

func (s *EvaluationService) normalizeOrder(input OrderInput, now time.Time) (domain.Order, error) {
	orderTime := now
	if raw := strings.TrimSpace(input.OrderTime); raw != "" {
		parsed, ok := parseOrderTime(raw)
		if ok {
			orderTime = parsed
		}
		// unparseable timestamps fall back to now, per the ingest contract
	}

	order, err := domain.NewOrder(
		strings.TrimSpace(input.OrderID),
		strings.TrimSpace(input.Customer),
		domain.NormalizePlatform(input.Platform),
		orderTime,
		input.OrderValue,
	)
	if err != nil {
		return domain.Order{}, err
	}

	if input.Carrier != "" {
		order.SuggestedCarrier = domain.NormalizeCarrier(input.Carrier)
	}

	return order, nil
}

func parseOrderTime(raw string) (time.Time, bool) {
	for _, layout := range orderTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ListEvaluated evaluates every stored order at the current clock reading,
// applies the query filters and returns the list sorted by priority
// descending (most urgent first).
func (s *EvaluationService) ListEvaluated(ctx context.Context, query ListQuery) ([]EvaluatedOrderDTO, error) {
	evaluated := s.evaluateAll()

	filtered := evaluated[:0]
	for _, e := range evaluated {
		if query.Platform != "" && e.Platform != domain.NormalizePlatform(query.Platform) {
			continue
		}
		if query.Level != "" && string(e.Status.Level) != query.Level {
			continue
		}
		if query.Search != "" && !matchesSearch(e, query.Search) {
			continue
		}
		filtered = append(filtered, e)
	}

	if query.Limit > 0 && len(filtered) > query.Limit {
		filtered = filtered[:query.Limit]
	}

	return toEvaluatedOrderDTOs(filtered), nil
}

func matchesSearch(e domain.EvaluatedOrder, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(e.OrderID), needle) ||
		strings.Contains(strings.ToLower(e.Customer), needle)
}

// Summary produces the dashboard overview for the current order list
func (s *EvaluationService) Summary(ctx context.Context) (*SummaryDTO, error) {
	evaluated := s.evaluateAll()

	counts := map[string]int{
		string(domain.SLALevelSafe):    0,
		string(domain.SLALevelWarning): 0,
		string(domain.SLALevelExpired): 0,
		string(domain.SLALevelUnknown): 0,
	}
	var critical []domain.EvaluatedOrder
	for _, e := range evaluated {
		counts[string(e.Status.Level)]++
		if e.Status.Urgency == domain.UrgencyCritical {
			critical = append(critical, e)
		}
	}

	return &SummaryDTO{
		TotalOrders:    len(evaluated),
		CountsByLevel:  counts,
		CriticalOrders: toEvaluatedOrderDTOs(critical),
		GeneratedAt:    s.clock(),
	}, nil
}

// EvaluateAll runs one evaluation pass over the whole list and reports the
// per-level counts. Used by the periodic refresher; list and summary reads
// go through the same path.
func (s *EvaluationService) EvaluateAll(ctx context.Context) map[domain.SLALevel]int {
	start := time.Now()
	evaluated := s.evaluateAll()

	counts := make(map[domain.SLALevel]int, 4)
	for _, e := range evaluated {
		counts[e.Status.Level]++
		s.metrics.RecordOrderEvaluated(string(e.Status.Level))
	}
	for _, level := range []domain.SLALevel{
		domain.SLALevelSafe,
		domain.SLALevelWarning,
		domain.SLALevelExpired,
		domain.SLALevelUnknown,
	} {
		s.metrics.SetOrdersByLevel(string(level), counts[level])
	}
	s.metrics.RecordEvaluationPass(time.Since(start))

	return counts
}

// evaluateAll evaluates the full order list at one clock reading, sorted by
// priority descending with earliest deadline as tie-break
func (s *EvaluationService) evaluateAll() []domain.EvaluatedOrder {
	now := s.clock()
	matrix := s.matrix.Get()
	orders := s.orders.All()

	evaluated := make([]domain.EvaluatedOrder, 0, len(orders))
	for _, order := range orders {
		evaluated = append(evaluated, domain.Evaluate(order, matrix, now))
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		if evaluated[i].Priority != evaluated[j].Priority {
			return evaluated[i].Priority > evaluated[j].Priority
		}
		return evaluated[i].TimeRemainingHours < evaluated[j].TimeRemainingHours
	})

	return evaluated
}

// GetMatrix returns the current deadline matrix snapshot
func (s *EvaluationService) GetMatrix(ctx context.Context) domain.DeadlineMatrix {
	return s.matrix.Get()
}

// UpdateMatrix validates and swaps in a new deadline matrix
func (s *EvaluationService) UpdateMatrix(ctx context.Context, cmd UpdateMatrixCommand) (domain.DeadlineMatrix, error) {
	matrix := toDomainMatrix(cmd)
	if err := matrix.Validate(); err != nil {
		return nil, errors.ErrValidation(err.Error())
	}

	s.matrix.Swap(matrix)
	s.metrics.RecordMatrixUpdate()

	s.logger.Event(ctx, "sla.matrix.updated", map[string]any{
		"platforms": len(matrix),
	})

	return matrix, nil
}

// ClearOrders discards the in-memory order list
func (s *EvaluationService) ClearOrders(ctx context.Context) int {
	count := s.orders.Count()
	s.orders.Clear()
	s.logger.Event(ctx, "orders.cleared", map[string]any{"count": count})
	return count
}
