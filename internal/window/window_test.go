package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropcast/cropcast/internal/refdata"
)

// Peach targets leave a visible harvest_window band between maturity
// (1800) and peak minus one window (1850).
var peachTargets = refdata.CropTargets{
	BaseTemp:      45,
	GDDToMaturity: 1800,
	GDDToPeak:     2000,
	GDDWindow:     150,
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name     string
		gdd      float64
		expected Status
	}{
		{"season start", 0, StatusPreSeason},
		{"just under 80 pct", 1439.9, StatusPreSeason},
		{"80 pct boundary", 1440, StatusApproaching},
		{"just under maturity", 1799.9, StatusApproaching},
		{"maturity boundary", 1800, StatusHarvestWindow},
		{"inside harvest window", 1849, StatusHarvestWindow},
		{"window edge into peak", 1850, StatusPeak},
		{"at peak target", 2000, StatusPeak},
		{"last peak unit", 2149, StatusPeak},
		{"into late season", 2150, StatusLateSeason},
		{"last late unit", 2299, StatusLateSeason},
		{"post season", 2300, StatusPostSeason},
		{"far past", 9000, StatusPostSeason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Classify(tt.gdd, peachTargets, 0)
			assert.Equal(t, tt.expected, a.Status)
		})
	}
}

// Navel oranges carry a window half-width (2000) wider than the gap from
// maturity (5100) to peak (6100), so harvest_window collapses and the
// season steps from approaching straight into peak.
func TestClassifyCollapsedHarvestWindow(t *testing.T) {
	navel := refdata.CropTargets{BaseTemp: 55, GDDToMaturity: 5100, GDDToPeak: 6100, GDDWindow: 2000}

	assert.Equal(t, StatusApproaching, Classify(5000, navel, 0).Status)
	assert.Equal(t, StatusPeak, Classify(5100, navel, 0).Status)
	assert.Equal(t, StatusPeak, Classify(6100, navel, 0).Status)
	assert.Equal(t, StatusLateSeason, Classify(8100, navel, 0).Status)
	assert.Equal(t, StatusPostSeason, Classify(10100, navel, 0).Status)
}

func TestPercentProgress(t *testing.T) {
	a := Classify(900, peachTargets, 0)
	assert.InDelta(t, 50, a.PercentToMaturity, 1e-9)
	assert.InDelta(t, 45, a.PercentToPeak, 1e-9)

	// Progress keeps counting past 100%.
	a = Classify(2200, peachTargets, 0)
	assert.InDelta(t, 122.22222, a.PercentToMaturity, 1e-4)
	assert.InDelta(t, 110, a.PercentToPeak, 1e-9)
}

func TestDaysToHarvest(t *testing.T) {
	// 300 GDD short at 20 per day.
	a := Classify(1500, peachTargets, 20)
	require.NotNil(t, a.DaysToHarvest)
	assert.Equal(t, 15, *a.DaysToHarvest)

	// Partial days round up.
	a = Classify(1500, peachTargets, 21)
	require.NotNil(t, a.DaysToHarvest)
	assert.Equal(t, 15, *a.DaysToHarvest)

	// At or past maturity the countdown is over, not an error.
	a = Classify(1800, peachTargets, 20)
	assert.Nil(t, a.DaysToHarvest)
	a = Classify(2500, peachTargets, 20)
	assert.Nil(t, a.DaysToHarvest)

	// Without a usable rate there is no estimate.
	a = Classify(1500, peachTargets, 0)
	assert.Nil(t, a.DaysToHarvest)
}
