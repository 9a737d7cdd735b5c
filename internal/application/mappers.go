package application

import (
	"github.com/wms-platform/sla-service/internal/domain"
)

func toEvaluatedOrderDTO(evaluated domain.EvaluatedOrder) EvaluatedOrderDTO {
	dto := EvaluatedOrderDTO{
		OrderID:            evaluated.OrderID,
		Customer:           evaluated.Customer,
		Platform:           evaluated.Platform.String(),
		SuggestedCarrier:   evaluated.SuggestedCarrier.String(),
		OrderValue:         evaluated.OrderValue,
		OrderTime:          evaluated.OrderTime,
		SLALevel:           string(evaluated.Status.Level),
		Urgency:            string(evaluated.Status.Urgency),
		Priority:           evaluated.Priority,
		EvaluatedAt:        evaluated.EvaluatedAt,
		TimeRemainingLabel: "—",
	}

	if evaluated.HasDeadline {
		remaining := evaluated.TimeRemainingHours
		dto.TimeRemainingHours = &remaining
		dto.TimeRemainingLabel = domain.FormatTimeRemaining(remaining)
	}

	return dto
}

func toEvaluatedOrderDTOs(evaluated []domain.EvaluatedOrder) []EvaluatedOrderDTO {
	dtos := make([]EvaluatedOrderDTO, 0, len(evaluated))
	for _, e := range evaluated {
		dtos = append(dtos, toEvaluatedOrderDTO(e))
	}
	return dtos
}

func toDomainMatrix(cmd UpdateMatrixCommand) domain.DeadlineMatrix {
	matrix := make(domain.DeadlineMatrix, len(cmd.Entries))
	for platform, carriers := range cmd.Entries {
		p := domain.NormalizePlatform(platform)
		matrix[p] = make(map[domain.Carrier]domain.Deadline, len(carriers))
		for carrier, entry := range carriers {
			matrix[p][domain.NormalizeCarrier(carrier)] = domain.Deadline{
				ConfirmHours:  entry.ConfirmHours,
				HandoverHours: entry.HandoverHours,
			}
		}
	}
	return matrix
}
