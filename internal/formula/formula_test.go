package formula

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropcast/cropcast/internal/gdd"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		tempMax  float64
		tempMin  float64
		params   Params
		expected float64
	}{
		{
			name:     "v1 basic",
			tempMax:  80,
			tempMin:  60,
			params:   Params{Version: V1, BaseTemp: 55},
			expected: 15,
		},
		{
			name:     "v2 caps the high before averaging",
			tempMax:  95,
			tempMin:  75,
			params:   Params{Version: V2, BaseTemp: 55, HeatStressCap: 86},
			expected: 25.5,
		},
		{
			name:     "v2 leaves mild days alone",
			tempMax:  80,
			tempMin:  60,
			params:   Params{Version: V2, BaseTemp: 55, HeatStressCap: 86},
			expected: 15,
		},
		{
			name:     "v3 scales by water stress",
			tempMax:  95,
			tempMin:  75,
			params:   Params{Version: V3, BaseTemp: 55, HeatStressCap: 86, WaterStressModifier: 0.8},
			expected: 20.4,
		},
		{
			name:     "v3 clamps negative results to zero",
			tempMax:  95,
			tempMin:  75,
			params:   Params{Version: V3, BaseTemp: 55, HeatStressCap: 86, WaterStressModifier: -0.5},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.tempMax, tt.tempMin, tt.params)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCalculateUnknownVersion(t *testing.T) {
	_, err := Calculate(80, 60, Params{Version: "v99", BaseTemp: 55})
	require.ErrorIs(t, err, ErrUnknownVersion)

	_, err = Calculate(80, 60, Params{BaseTemp: 55})
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestCalculateRejectsMissingCap(t *testing.T) {
	_, err := Calculate(80, 60, Params{Version: V2, BaseTemp: 55})
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = Calculate(80, 60, Params{Version: V3, BaseTemp: 55, WaterStressModifier: 1})
	require.ErrorIs(t, err, ErrInvalidParams)
}

// Capping the daily high can only remove heat, and water stress below
// 1.0 can only remove more.
func TestVersionOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		min := 40 + rng.Float64()*50
		max := min + rng.Float64()*40

		v1, err := Calculate(max, min, Params{Version: V1, BaseTemp: 55})
		require.NoError(t, err)
		v2, err := Calculate(max, min, Params{Version: V2, BaseTemp: 55, HeatStressCap: 86})
		require.NoError(t, err)
		v3, err := Calculate(max, min, Params{Version: V3, BaseTemp: 55, HeatStressCap: 86, WaterStressModifier: 0.85})
		require.NoError(t, err)

		require.LessOrEqual(t, v2, v1)
		require.LessOrEqual(t, v3, v2)
		require.GreaterOrEqual(t, v3, 0.0)
	}
}

func TestCalculateCumulative(t *testing.T) {
	bloom := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	samples := []gdd.Sample{
		{Date: bloom, TempMax: 95, TempMin: 75},
		{Date: bloom.AddDate(0, 0, 1), TempMax: 80, TempMin: 60},
	}

	res, err := CalculateCumulative(samples, bloom, Params{Version: V2, BaseTemp: 55, HeatStressCap: 86})
	require.NoError(t, err)
	assert.Equal(t, V2, res.Version)
	require.Len(t, res.Days, 2)
	assert.InDelta(t, 25.5, res.Days[0].Daily, 1e-9)
	assert.InDelta(t, 15, res.Days[1].Daily, 1e-9)
	assert.InDelta(t, 40.5, res.Total, 1e-9)
}

func TestCalculateCumulativeErrors(t *testing.T) {
	bloom := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, err := CalculateCumulative(nil, bloom, Params{Version: "vX", BaseTemp: 55})
	require.ErrorIs(t, err, ErrUnknownVersion)

	bad := []gdd.Sample{{Date: bloom, TempMax: 60, TempMin: 70}}
	_, err = CalculateCumulative(bad, bloom, Params{Version: V1, BaseTemp: 55})
	require.ErrorIs(t, err, gdd.ErrInvalidSample)
}

func TestRecommended(t *testing.T) {
	assert.Equal(t, Current, Recommended("navel_orange", "indian_river"))
	assert.Equal(t, Latest, Recommended("tomato", "indian_river"))
	assert.Equal(t, Latest, Recommended("pepper", ""))
	assert.Equal(t, Latest, Recommended("navel_orange", "california_central_valley"))
	assert.Equal(t, Current, Recommended("", ""))
}

func TestMetadata(t *testing.T) {
	e, err := Metadata(V2)
	require.NoError(t, err)
	assert.Equal(t, V2, e.Version)
	assert.False(t, e.DeployedAt.IsZero())
	assert.Greater(t, e.MeanAbsoluteError, 0.0)

	_, err = Metadata("v0")
	require.ErrorIs(t, err, ErrUnknownVersion)
}

func TestVersionsIsACopy(t *testing.T) {
	entries := Versions()
	require.Len(t, entries, 3)
	assert.Equal(t, V1, entries[0].Version)

	entries[0].MeanAbsoluteError = -1
	again, err := Metadata(V1)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, again.MeanAbsoluteError, 1e-9)
}

func TestCompare(t *testing.T) {
	bloom := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	samples := []gdd.Sample{
		{Date: bloom, TempMax: 95, TempMin: 75},
		{Date: bloom.AddDate(0, 0, 1), TempMax: 100, TempMin: 78},
		{Date: bloom.AddDate(0, 0, 2), TempMax: 82, TempMin: 64},
	}
	p := Params{BaseTemp: 55, HeatStressCap: 86, WaterStressModifier: 0.8}

	// Drought-prone region: v3 is the recommendation.
	comps, err := Compare(samples, bloom, p, "navel_orange", "texas_rgv")
	require.NoError(t, err)
	require.Len(t, comps, 3)

	var recommended int
	for _, c := range comps {
		if c.Recommended {
			recommended++
			assert.Equal(t, Latest, c.Entry.Version)
			assert.InDelta(t, 0, c.MeanDailyDelta, 1e-9)
		} else {
			assert.Greater(t, c.MeanDailyDelta, 0.0)
		}
	}
	assert.Equal(t, 1, recommended)

	// The sweep preserves the single-version ordering on hot series.
	byVersion := map[Version]float64{}
	for _, c := range comps {
		byVersion[c.Entry.Version] = c.Total
	}
	assert.Greater(t, byVersion[V1], byVersion[V2])
	assert.Greater(t, byVersion[V2], byVersion[V3])
}
