package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/963krob/event-business-ad-optimizer/internal/api/models"
	"github.com/963krob/event-business-ad-optimizer/internal/model"
	"github.com/963krob/event-business-ad-optimizer/internal/store"
)

// ScenarioHandler handles scenario persistence requests
type ScenarioHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(st *store.Store, logger *zap.Logger) *ScenarioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioHandler{store: st, logger: logger}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	names, err := h.store.List()
	if err != nil {
		h.logger.Error("list scenarios", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": names})
}

// SaveScenario handles POST /api/v1/scenarios.
// Saving under an existing name silently replaces the prior record.
func (h *ScenarioHandler) SaveScenario(c *gin.Context) {
	var req models.SaveScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if err := req.Parameters.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return
	}

	rec, err := h.store.Save(req.Name, req.Parameters)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	h.logger.Info("scenario saved", zap.String("name", rec.Name), zap.String("id", rec.ID))
	c.JSON(http.StatusOK, scenarioInfo(rec))
}

// GetScenario handles GET /api/v1/scenarios/:name
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	rec, err := h.store.Load(c.Param("name"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenarioInfo(rec))
}

// DeleteScenario handles DELETE /api/v1/scenarios/:name
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	name := c.Param("name")
	if err := h.store.Delete(name); err != nil {
		h.respondStoreError(c, err)
		return
	}
	h.logger.Info("scenario deleted", zap.String("name", name))
	c.JSON(http.StatusOK, gin.H{"deleted": name})
}

// ExportScenario handles GET /api/v1/scenarios/:name/export.
// Returns the record as a YAML document suitable for the CLI's -scenario flag.
func (h *ScenarioHandler) ExportScenario(c *gin.Context) {
	rec, err := h.store.Load(c.Param("name"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	doc := struct {
		Name       string       `yaml:"name"`
		SavedAt    string       `yaml:"saved_at"`
		Parameters model.Params `yaml:"parameters"`
	}{
		Name:       rec.Name,
		SavedAt:    rec.SavedAt.Format("2006-01-02T15:04:05Z07:00"),
		Parameters: rec.Parameters,
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Name+".yaml"))
	c.Data(http.StatusOK, "application/x-yaml", raw)
}

func (h *ScenarioHandler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SCENARIO_NOT_FOUND",
				Message: err.Error(),
			},
		})
	case errors.Is(err, store.ErrInvalidName):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_NAME",
				Message: err.Error(),
			},
		})
	default:
		h.logger.Error("scenario store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
	}
}

func scenarioInfo(rec *store.Record) models.ScenarioInfo {
	return models.ScenarioInfo{
		ID:         rec.ID,
		Name:       rec.Name,
		Parameters: rec.Parameters,
		SavedAt:    rec.SavedAt,
	}
}
