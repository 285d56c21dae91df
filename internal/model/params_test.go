package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidateBounds(t *testing.T) {
	p := Defaults()
	p.AttendancePct = 100
	p.SalesMixPrePct = 0
	assert.NoError(t, p.Validate())

	p.AttendancePct = 100.1
	err := p.Validate()
	require.Error(t, err)
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "attendance_percentage", inputErr.Field)
}

func TestMergeOverlaysNonZeroFields(t *testing.T) {
	base := Defaults()
	base.FixedCosts = 5000
	base.AdSpend = 1000
	base.VenueCapacity = 200

	override := Params{AdSpend: 2500, EventsPerMonth: 4}
	merged := Merge(base, override)

	assert.Equal(t, 2500.0, merged.AdSpend)
	assert.Equal(t, 4, merged.EventsPerMonth)
	// Untouched fields come from the base.
	assert.Equal(t, 5000.0, merged.FixedCosts)
	assert.Equal(t, 200, merged.VenueCapacity)
	assert.Equal(t, base.AttendancePct, merged.AttendancePct)
}

func TestMergeZeroOverrideKeepsBase(t *testing.T) {
	base := Defaults()
	base.FixedCosts = 5000

	merged := Merge(base, Params{})
	assert.Equal(t, base, merged)
}
