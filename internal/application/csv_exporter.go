package application

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed export column order expected by the ops team's
// spreadsheet templates
var csvHeader = []string{"Order ID", "Customer", "Platform", "Carrier", "Value", "Time Remaining", "Priority"}

// ExportCSV writes the evaluated, filtered, priority-sorted order list as
// CSV to w
func (s *EvaluationService) ExportCSV(ctx context.Context, w io.Writer, query ListQuery) error {
	orders, err := s.ListEvaluated(ctx, query)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, order := range orders {
		record := []string{
			order.OrderID,
			order.Customer,
			order.Platform,
			order.SuggestedCarrier,
			strconv.FormatFloat(order.OrderValue, 'f', 0, 64),
			order.TimeRemainingLabel,
			strconv.FormatFloat(order.Priority, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.metrics.RecordExport()
	return nil
}
