package metrics

import (
	"fmt"

	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

// DefaultAttendanceLevels are the attendance percentages shown in the
// profitability thresholds table.
var DefaultAttendanceLevels = []float64{40, 50, 60, 70, 80, 90}

// ThresholdRow holds break-even metrics at one attendance level.
type ThresholdRow struct {
	AttendancePct float64
	BreakevenROAS float64
	BreakevenCPP  float64
}

// Thresholds evaluates break-even ROAS and CPP at each attendance level,
// holding all other parameters fixed.
func (e *Engine) Thresholds(p model.Params, levels []float64) ([]ThresholdRow, error) {
	if len(levels) == 0 {
		levels = DefaultAttendanceLevels
	}
	rows := make([]ThresholdRow, 0, len(levels))
	for _, level := range levels {
		at := p
		at.AttendancePct = level
		proj, err := e.Project(at)
		if err != nil {
			return nil, fmt.Errorf("thresholds at %.0f%%: %w", level, err)
		}
		rows = append(rows, ThresholdRow{
			AttendancePct: level,
			BreakevenROAS: proj.BreakevenROAS,
			BreakevenCPP:  proj.BreakevenCPP,
		})
	}
	return rows, nil
}
