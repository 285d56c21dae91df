package metrics

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
)

// WriteThresholdsCSV writes the profitability thresholds table to path.
func WriteThresholdsCSV(path string, rows []ThresholdRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"attendance_percentage", "breakeven_roas", "breakeven_cpp"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			fmtFloat(r.AttendancePct),
			fmtFloat(r.BreakevenROAS),
			fmtFloat(r.BreakevenCPP),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}
