package models

import "github.com/963krob/event-business-ad-optimizer/internal/model"

// ProjectionRequest represents the request body for computing a projection.
type ProjectionRequest struct {
	Parameters model.Params      `json:"parameters" binding:"required"`
	Options    ProjectionOptions `json:"options,omitempty"`
}

// ProjectionOptions contains optional projection parameters.
type ProjectionOptions struct {
	// AttendanceLevels overrides the attendance percentages used for the
	// thresholds table. Empty means the default 40-90% ladder.
	AttendanceLevels []float64 `json:"attendance_levels,omitempty"`
	// IncludeThresholds controls whether the thresholds table is computed.
	IncludeThresholds bool `json:"include_thresholds,omitempty"`
}

// SaveScenarioRequest represents a request to save the current form state.
type SaveScenarioRequest struct {
	Name       string       `json:"name" binding:"required"`
	Parameters model.Params `json:"parameters" binding:"required"`
}

// CompareRequest represents a request to compare scenario variations.
// Each variation overlays its non-zero fields onto the base parameters.
type CompareRequest struct {
	BaseParameters model.Params `json:"base_parameters" binding:"required"`
	Variations     []Variation  `json:"variations" binding:"required"`
}

// Variation is one named parameter overlay to compare.
type Variation struct {
	Name       string       `json:"name" binding:"required"`
	Parameters model.Params `json:"parameters"`
}
