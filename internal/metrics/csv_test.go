package metrics

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThresholdsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "thresholds.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	rows := []ThresholdRow{
		{AttendancePct: 40, BreakevenROAS: 0.5, BreakevenCPP: 75},
		{AttendancePct: 50, BreakevenROAS: math.Inf(1), BreakevenCPP: math.Inf(1)},
	}
	require.NoError(t, WriteThresholdsCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"attendance_percentage", "breakeven_roas", "breakeven_cpp"}, records[0])
	assert.Equal(t, []string{"40.00", "0.50", "75.00"}, records[1])
	assert.Equal(t, []string{"50.00", "inf", "inf"}, records[2])
}
