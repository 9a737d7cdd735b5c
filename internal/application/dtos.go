package application

import "time"

// EvaluatedOrderDTO is the evaluated order as rendered by the dashboard
type EvaluatedOrderDTO struct {
	OrderID            string    `json:"orderId"`
	Customer           string    `json:"customer,omitempty"`
	Platform           string    `json:"platform"`
	SuggestedCarrier   string    `json:"suggestedCarrier"`
	OrderValue         float64   `json:"orderValue"`
	OrderTime          time.Time `json:"orderTime"`
	SLALevel           string    `json:"slaLevel"`
	Urgency            string    `json:"urgency,omitempty"`
	TimeRemainingHours *float64  `json:"timeRemainingHours,omitempty"`
	TimeRemainingLabel string    `json:"timeRemainingLabel"`
	Priority           float64   `json:"priority"`
	EvaluatedAt        time.Time `json:"evaluatedAt"`
}

// SummaryDTO is the dashboard overview: per-level counts and the orders
// that need attention first
type SummaryDTO struct {
	TotalOrders    int                 `json:"totalOrders"`
	CountsByLevel  map[string]int      `json:"countsByLevel"`
	CriticalOrders []EvaluatedOrderDTO `json:"criticalOrders"`
	GeneratedAt    time.Time           `json:"generatedAt"`
}

// IngestResultDTO reports the outcome of an order ingest
type IngestResultDTO struct {
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
	Total    int      `json:"total"`
}
