package domain

import (
	"errors"
	"time"
)

// ErrEmptyOrderID is returned when an order is created without an ID
var ErrEmptyOrderID = errors.New("order ID cannot be empty")

// ErrZeroOrderTime is returned when an order is created without a timestamp.
// Upstream ingestion is responsible for defaulting missing or unparseable
// timestamps before the order reaches the domain.
var ErrZeroOrderTime = errors.New("order time cannot be zero")

// Order is the minimal order record the SLA evaluator operates on
type Order struct {
	OrderID          string    `json:"orderId"`
	Customer         string    `json:"customer,omitempty"`
	Platform         Platform  `json:"platform"`
	OrderTime        time.Time `json:"orderTime"`
	OrderValue       float64   `json:"orderValue"`
	SuggestedCarrier Carrier   `json:"suggestedCarrier,omitempty"`
}

// NewOrder creates a validated Order. Negative order values clamp to zero;
// they affect scoring only and are not an error.
func NewOrder(orderID, customer string, platform Platform, orderTime time.Time, orderValue float64) (Order, error) {
	if orderID == "" {
		return Order{}, ErrEmptyOrderID
	}
	if orderTime.IsZero() {
		return Order{}, ErrZeroOrderTime
	}
	if orderValue < 0 {
		orderValue = 0
	}

	return Order{
		OrderID:    orderID,
		Customer:   customer,
		Platform:   platform,
		OrderTime:  orderTime,
		OrderValue: orderValue,
	}, nil
}
