package model

import "fmt"

// Params defines the business inputs for one projection.
// Units:
// - Monetary fields: USD
// - AttendancePct, SalesMixPrePct: percent 0..100
// - VenueCapacity: tickets per event
// - EventsPerMonth: count
type Params struct {
	FixedCosts      float64 `json:"fixed_costs" yaml:"fixed_costs"`
	EventCost       float64 `json:"event_cost" yaml:"event_cost"`
	TicketPricePre  float64 `json:"ticket_price_pre" yaml:"ticket_price_pre"`
	TicketPricePost float64 `json:"ticket_price_post" yaml:"ticket_price_post"`
	VenueCapacity   int     `json:"venue_capacity" yaml:"venue_capacity"`
	EventsPerMonth  int     `json:"events_per_month" yaml:"events_per_month"`
	AttendancePct   float64 `json:"attendance_percentage" yaml:"attendance_percentage"`
	SalesMixPrePct  float64 `json:"sales_mix_pre" yaml:"sales_mix_pre"`
	AdSpend         float64 `json:"ad_spend" yaml:"ad_spend"`
	TicketsSold     int     `json:"tickets_sold" yaml:"tickets_sold"`
	// Optional, informational only. Not used in any formula.
	HistoricalAttendance int `json:"historical_attendance" yaml:"historical_attendance"`
}

// InvalidInputError names the parameter that failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Defaults returns the initial form state.
func Defaults() Params {
	return Params{
		VenueCapacity:  1,
		EventsPerMonth: 1,
		AttendancePct:  50,
		SalesMixPrePct: 50,
	}
}

func (p Params) Validate() error {
	if p.FixedCosts < 0 {
		return invalid("fixed_costs", "must be >= 0")
	}
	if p.EventCost < 0 {
		return invalid("event_cost", "must be >= 0")
	}
	if p.TicketPricePre < 0 {
		return invalid("ticket_price_pre", "must be >= 0")
	}
	if p.TicketPricePost < 0 {
		return invalid("ticket_price_post", "must be >= 0")
	}
	if p.VenueCapacity < 1 {
		return invalid("venue_capacity", "must be >= 1")
	}
	if p.EventsPerMonth < 1 {
		return invalid("events_per_month", "must be >= 1")
	}
	if p.AttendancePct < 0 || p.AttendancePct > 100 {
		return invalid("attendance_percentage", "must be between 0 and 100")
	}
	if p.SalesMixPrePct < 0 || p.SalesMixPrePct > 100 {
		return invalid("sales_mix_pre", "must be between 0 and 100")
	}
	if p.AdSpend < 0 {
		return invalid("ad_spend", "must be >= 0")
	}
	if p.TicketsSold < 0 {
		return invalid("tickets_sold", "must be >= 0")
	}
	if p.HistoricalAttendance < 0 {
		return invalid("historical_attendance", "must be >= 0")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base.
// Used by the compare endpoint: each variation only states what it changes.
func Merge(base, override Params) Params {
	out := base
	if override.FixedCosts != 0 {
		out.FixedCosts = override.FixedCosts
	}
	if override.EventCost != 0 {
		out.EventCost = override.EventCost
	}
	if override.TicketPricePre != 0 {
		out.TicketPricePre = override.TicketPricePre
	}
	if override.TicketPricePost != 0 {
		out.TicketPricePost = override.TicketPricePost
	}
	if override.VenueCapacity != 0 {
		out.VenueCapacity = override.VenueCapacity
	}
	if override.EventsPerMonth != 0 {
		out.EventsPerMonth = override.EventsPerMonth
	}
	if override.AttendancePct != 0 {
		out.AttendancePct = override.AttendancePct
	}
	if override.SalesMixPrePct != 0 {
		out.SalesMixPrePct = override.SalesMixPrePct
	}
	if override.AdSpend != 0 {
		out.AdSpend = override.AdSpend
	}
	if override.TicketsSold != 0 {
		out.TicketsSold = override.TicketsSold
	}
	if override.HistoricalAttendance != 0 {
		out.HistoricalAttendance = override.HistoricalAttendance
	}
	return out
}
