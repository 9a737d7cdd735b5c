package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/sla-service/internal/application"
	"github.com/wms-platform/sla-service/pkg/errors"
	"github.com/wms-platform/sla-service/pkg/logging"
	"github.com/wms-platform/sla-service/pkg/middleware"
)

// SLAHandler handles HTTP requests for order ingestion and SLA evaluation
type SLAHandler struct {
	service *application.EvaluationService
	logger  *logging.Logger
}

// NewSLAHandler creates a new SLAHandler
func NewSLAHandler(service *application.EvaluationService, logger *logging.Logger) *SLAHandler {
	return &SLAHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the SLA routes
func (h *SLAHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Orders
	r.POST("/orders", h.IngestOrders)
	r.GET("/orders", h.ListOrders)
	r.DELETE("/orders", h.ClearOrders)
	r.POST("/orders/demo", h.LoadDemoOrders)
	r.GET("/orders/export", h.ExportOrders)

	// SLA matrix
	r.GET("/sla/matrix", h.GetMatrix)
	r.PUT("/sla/matrix", h.UpdateMatrix)

	// Dashboard
	r.GET("/dashboard/summary", h.GetSummary)
}

// IngestOrders handles POST /api/v1/orders
func (h *SLAHandler) IngestOrders(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var cmd application.IngestOrdersCommand
	if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	middleware.AddSpanAttributes(c, map[string]interface{}{
		"orders.count": len(cmd.Orders),
		"orders.mode":  cmd.Mode,
	})

	result, err := h.service.IngestOrders(c.Request.Context(), cmd)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			responder.RespondWithAppError(appErr)
		} else {
			responder.RespondInternalError(err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": result})
}

// ListOrders handles GET /api/v1/orders
func (h *SLAHandler) ListOrders(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	query := h.parseListQuery(c)

	middleware.AddSpanAttributes(c, map[string]interface{}{
		"query.platform": query.Platform,
		"query.level":    query.Level,
	})

	orders, err := h.service.ListEvaluated(c.Request.Context(), query)
	if err != nil {
		responder.RespondInternalError(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders, "count": len(orders)})
}

// ClearOrders handles DELETE /api/v1/orders
func (h *SLAHandler) ClearOrders(c *gin.Context) {
	cleared := h.service.ClearOrders(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cleared": cleared}})
}

// LoadDemoOrders handles POST /api/v1/orders/demo
func (h *SLAHandler) LoadDemoOrders(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	count, err := h.service.LoadDemoOrders(c.Request.Context())
	if err != nil {
		responder.RespondInternalError(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"loaded": count}})
}

// ExportOrders handles GET /api/v1/orders/export
func (h *SLAHandler) ExportOrders(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	query := h.parseListQuery(c)
	filename := fmt.Sprintf("sla-orders-%s.csv", time.Now().UTC().Format("20060102-150405"))

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportCSV(c.Request.Context(), c.Writer, query); err != nil {
		responder.RespondInternalError(err)
		return
	}

	c.Status(http.StatusOK)
}

// GetMatrix handles GET /api/v1/sla/matrix
func (h *SLAHandler) GetMatrix(c *gin.Context) {
	matrix := h.service.GetMatrix(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": matrix})
}

// UpdateMatrix handles PUT /api/v1/sla/matrix
func (h *SLAHandler) UpdateMatrix(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	var cmd application.UpdateMatrixCommand
	if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
		responder.RespondWithAppError(appErr)
		return
	}

	middleware.AddSpanAttributes(c, map[string]interface{}{
		"matrix.platforms": len(cmd.Entries),
	})

	matrix, err := h.service.UpdateMatrix(c.Request.Context(), cmd)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			responder.RespondWithAppError(appErr)
		} else {
			responder.RespondInternalError(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": matrix})
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *SLAHandler) GetSummary(c *gin.Context) {
	responder := middleware.NewErrorResponder(c, h.logger.Logger)

	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		responder.RespondInternalError(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *SLAHandler) parseListQuery(c *gin.Context) application.ListQuery {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	return application.ListQuery{
		Platform: c.Query("platform"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
		Limit:    limit,
	}
}
