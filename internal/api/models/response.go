package models

import (
	"math"
	"time"

	"github.com/963krob/event-business-ad-optimizer/internal/metrics"
	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

// ProjectionResponse represents the response from a projection run.
type ProjectionResponse struct {
	Parameters model.Params      `json:"parameters"`
	Summary    ProjectionSummary `json:"summary"`
	Thresholds []ThresholdRow    `json:"thresholds,omitempty"`
}

// ProjectionSummary contains the derived metrics for one parameter set.
// Break-even fields are null when unbounded (zero cost base / zero projected
// tickets); current ROAS/CPP are null when there is no ad spend / no sales.
type ProjectionSummary struct {
	AvgTicketPrice   float64  `json:"avg_ticket_price"`
	TotalFixedCosts  float64  `json:"total_fixed_costs"`
	TotalEventCosts  float64  `json:"total_event_costs"`
	ProjectedRevenue float64  `json:"projected_revenue"`
	ProjectedProfit  float64  `json:"projected_profit"`
	ProjectedTickets float64  `json:"projected_tickets"`
	BreakevenAdSpend float64  `json:"breakeven_ad_spend"`
	BreakevenROAS    *float64 `json:"breakeven_roas"`
	BreakevenCPP     *float64 `json:"breakeven_cpp"`
	CurrentROAS      *float64 `json:"current_roas"`
	CurrentCPP       *float64 `json:"current_cpp"`
}

// ThresholdRow is one attendance level in the profitability thresholds table.
type ThresholdRow struct {
	AttendancePct float64  `json:"attendance_percentage"`
	BreakevenROAS *float64 `json:"breakeven_roas"`
	BreakevenCPP  *float64 `json:"breakeven_cpp"`
}

// CompareResponse represents the response from a scenario comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name       string            `json:"name"`
	Parameters model.Params      `json:"parameters"`
	Summary    ProjectionSummary `json:"summary"`
}

// ScenarioInfo describes one stored scenario.
type ScenarioInfo struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Parameters model.Params `json:"parameters"`
	SavedAt    time.Time    `json:"saved_at"`
}

// ParameterInfo describes one form field.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Min         *float64    `json:"min,omitempty"`
	Max         *float64    `json:"max,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewProjectionSummary converts an engine projection into the wire shape,
// mapping Inf/NaN onto null (JSON has no encoding for either).
func NewProjectionSummary(p *metrics.Projection) ProjectionSummary {
	return ProjectionSummary{
		AvgTicketPrice:   p.AvgTicketPrice,
		TotalFixedCosts:  p.TotalFixedCosts,
		TotalEventCosts:  p.TotalEventCosts,
		ProjectedRevenue: p.ProjectedRevenue,
		ProjectedProfit:  p.ProjectedProfit,
		ProjectedTickets: p.ProjectedTickets,
		BreakevenAdSpend: p.BreakevenAdSpend,
		BreakevenROAS:    finiteOrNil(p.BreakevenROAS),
		BreakevenCPP:     finiteOrNil(p.BreakevenCPP),
		CurrentROAS:      finiteOrNil(p.CurrentROAS),
		CurrentCPP:       finiteOrNil(p.CurrentCPP),
	}
}

// NewThresholdRows converts engine threshold rows into the wire shape.
func NewThresholdRows(rows []metrics.ThresholdRow) []ThresholdRow {
	out := make([]ThresholdRow, len(rows))
	for i, r := range rows {
		out[i] = ThresholdRow{
			AttendancePct: r.AttendancePct,
			BreakevenROAS: finiteOrNil(r.BreakevenROAS),
			BreakevenCPP:  finiteOrNil(r.BreakevenCPP),
		}
	}
	return out
}

func finiteOrNil(x float64) *float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil
	}
	return &x
}
