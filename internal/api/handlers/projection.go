package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/963krob/event-business-ad-optimizer/internal/api/models"
	"github.com/963krob/event-business-ad-optimizer/internal/metrics"
	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

// ProjectionHandler handles projection-related requests
type ProjectionHandler struct {
	engine *metrics.Engine
	logger *zap.Logger
}

// NewProjectionHandler creates a new projection handler
func NewProjectionHandler(engine *metrics.Engine, logger *zap.Logger) *ProjectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectionHandler{engine: engine, logger: logger}
}

// RunProjection handles POST /api/v1/projections
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	proj, err := h.engine.Project(req.Parameters)
	if err != nil {
		h.respondComputeError(c, err)
		return
	}

	response := models.ProjectionResponse{
		Parameters: req.Parameters,
		Summary:    models.NewProjectionSummary(proj),
	}

	if req.Options.IncludeThresholds {
		rows, err := h.engine.Thresholds(req.Parameters, req.Options.AttendanceLevels)
		if err != nil {
			h.respondComputeError(c, err)
			return
		}
		response.Thresholds = models.NewThresholdRows(rows)
	}

	c.JSON(http.StatusOK, response)
}

// Compare handles POST /api/v1/projections/compare
func (h *ProjectionHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := model.Merge(req.BaseParameters, variation.Parameters)
		proj, err := h.engine.Project(merged)
		if err != nil {
			// Skip invalid variations rather than failing the whole compare.
			h.logger.Warn("skipping variation",
				zap.String("name", variation.Name),
				zap.Error(err),
			)
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:       variation.Name,
			Parameters: merged,
			Summary:    models.NewProjectionSummary(proj),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

func (h *ProjectionHandler) respondComputeError(c *gin.Context, err error) {
	var inputErr *model.InvalidInputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: inputErr.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "PROJECTION_ERROR",
			Message: err.Error(),
		},
	})
}
