package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeRemaining(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"zero", 0, "0 phút"},
		{"negative clamps to zero", -1.5, "0 phút"},
		{"half hour", 0.5, "30 phút"},
		{"just under two hours stays in minutes", 1.99, "119 phút"},
		{"1.9833 hours is 119 minutes", 119.0 / 60.0, "119 phút"},
		{"two hours exactly drops the minutes", 2.0, "2h"},
		{"two and a half hours", 2.5, "2h 30p"},
		{"minute part rounding to sixty promotes the hour", 2.9999, "3h"},
		{"long window", 47.25, "47h 15p"},
		{"minutes rounding to zero omitted", 5.001, "5h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeRemaining(tt.hours))
		})
	}
}
