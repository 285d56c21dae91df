package metrics

import (
	"fmt"
	"math"

	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

// Projection holds the derived metrics for one parameter set.
// Break-even values are +Inf when the corresponding denominator is zero;
// CurrentROAS/CurrentCPP are NaN when undefined (no ad spend / no tickets sold).
type Projection struct {
	AvgTicketPrice   float64
	TotalFixedCosts  float64
	TotalEventCosts  float64
	ProjectedRevenue float64
	ProjectedProfit  float64
	ProjectedTickets float64
	BreakevenAdSpend float64
	BreakevenROAS    float64
	BreakevenCPP     float64
	CurrentROAS      float64
	CurrentCPP       float64
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Project computes the full metric set for a validated parameter mapping.
// Pure function: same params always produce the same projection.
func (e *Engine) Project(p model.Params) (*Projection, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	avg := avgTicketPrice(p.TicketPricePre, p.TicketPricePost, p.SalesMixPrePct)
	fixed := p.FixedCosts * float64(p.EventsPerMonth)
	eventCosts := p.EventCost * float64(p.EventsPerMonth)
	revenue := projectedRevenue(avg, p.VenueCapacity, p.AttendancePct, p.EventsPerMonth)
	tickets := projectedTickets(p.VenueCapacity, p.AttendancePct, p.EventsPerMonth)
	breakevenSpend := fixed + eventCosts

	proj := &Projection{
		AvgTicketPrice:   avg,
		TotalFixedCosts:  fixed,
		TotalEventCosts:  eventCosts,
		ProjectedRevenue: revenue,
		ProjectedProfit:  revenue - fixed - eventCosts - p.AdSpend,
		ProjectedTickets: tickets,
		BreakevenAdSpend: breakevenSpend,
		BreakevenROAS:    ratioOrInf(revenue, breakevenSpend),
		BreakevenCPP:     ratioOrInf(breakevenSpend, tickets),
		CurrentROAS:      ratioOrNaN(revenue, p.AdSpend),
		CurrentCPP:       ratioOrNaN(p.AdSpend, float64(p.TicketsSold)),
	}
	return proj, nil
}

// avgTicketPrice is the sales-mix weighted average of the two price tiers.
func avgTicketPrice(pre, post, mixPrePct float64) float64 {
	mixPost := 100 - mixPrePct
	return pre*mixPrePct/100 + post*mixPost/100
}

func projectedRevenue(avgPrice float64, capacity int, attendancePct float64, events int) float64 {
	perEvent := avgPrice * float64(capacity) * attendancePct / 100
	return perEvent * float64(events)
}

func projectedTickets(capacity int, attendancePct float64, events int) float64 {
	return float64(capacity) * attendancePct / 100 * float64(events)
}

func ratioOrInf(num, den float64) float64 {
	if den <= 0 {
		return math.Inf(1)
	}
	return num / den
}

func ratioOrNaN(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
