package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/963krob/event-business-ad-optimizer/internal/api/models"
	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

// ParameterHandler serves form-field metadata and defaults
type ParameterHandler struct{}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler() *ParameterHandler {
	return &ParameterHandler{}
}

// GetDefaults handles GET /api/v1/defaults
func (h *ParameterHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parameters": model.Defaults()})
}

// ListParameters handles GET /api/v1/parameters.
// The browser form builds its input fields from this metadata.
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	parameters := []models.ParameterInfo{
		{
			Name:        "fixed_costs",
			Type:        "float",
			Description: "Monthly overhead costs (USD): rent, salaries, utilities",
			Min:         f(0),
			Default:     0.0,
		},
		{
			Name:        "event_cost",
			Type:        "float",
			Description: "Production cost for a single event (USD): talent, equipment, staff",
			Min:         f(0),
			Default:     0.0,
		},
		{
			Name:        "ticket_price_pre",
			Type:        "float",
			Description: "Early bird ticket price before the event (USD)",
			Min:         f(0),
			Default:     0.0,
		},
		{
			Name:        "ticket_price_post",
			Type:        "float",
			Description: "Regular ticket price closer to the event (USD)",
			Min:         f(0),
			Default:     0.0,
		},
		{
			Name:        "venue_capacity",
			Type:        "int",
			Description: "Maximum number of tickets that can be sold per event",
			Min:         f(1),
			Default:     1,
		},
		{
			Name:        "events_per_month",
			Type:        "int",
			Description: "Number of events planned for the month",
			Min:         f(1),
			Default:     1,
		},
		{
			Name:        "attendance_percentage",
			Type:        "float",
			Description: "Expected percentage of venue capacity that will attend",
			Min:         f(0),
			Max:         f(100),
			Default:     50.0,
		},
		{
			Name:        "sales_mix_pre",
			Type:        "float",
			Description: "Percentage of tickets expected to sell at the pre-show price",
			Min:         f(0),
			Max:         f(100),
			Default:     50.0,
		},
		{
			Name:        "ad_spend",
			Type:        "float",
			Description: "Current advertising budget being spent (USD)",
			Min:         f(0),
			Default:     0.0,
		},
		{
			Name:        "tickets_sold",
			Type:        "int",
			Description: "Tickets sold so far for the upcoming event",
			Min:         f(0),
			Default:     0,
		},
		{
			Name:        "historical_attendance",
			Type:        "int",
			Description: "Optional historical average attendance, for reference only",
			Min:         f(0),
			Default:     0,
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}

func f(x float64) *float64 { return &x }
