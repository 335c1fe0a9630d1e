package refdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownLookups(t *testing.T) {
	tables := Default()

	assert.InDelta(t, 11.5, tables.CultivarBase("washington_navel"), 1e-9)
	assert.InDelta(t, 0.6, tables.RootstockModifier("carrizo"), 1e-9)
	assert.InDelta(t, -0.8, tables.RootstockModifier("macrophylla"), 1e-9)

	navel := tables.TargetsFor("navel_orange")
	assert.InDelta(t, 55, navel.BaseTemp, 1e-9)
	assert.InDelta(t, 5100, navel.GDDToMaturity, 1e-9)
	assert.InDelta(t, 6100, navel.GDDToPeak, 1e-9)
	assert.InDelta(t, 2000, navel.GDDWindow, 1e-9)
}

func TestUnknownIdsResolveToNeutralDefaults(t *testing.T) {
	tables := Default()

	assert.InDelta(t, DefaultBaseBrix, tables.CultivarBase("no_such_cultivar"), 1e-9)
	assert.InDelta(t, DefaultRootstockModifier, tables.RootstockModifier("no_such_rootstock"), 1e-9)

	generic := tables.TargetsFor("durian")
	assert.InDelta(t, 50, generic.BaseTemp, 1e-9)
	assert.InDelta(t, 1800, generic.GDDToMaturity, 1e-9)
	assert.InDelta(t, 2100, generic.GDDToPeak, 1e-9)
	assert.InDelta(t, 200, generic.GDDWindow, 1e-9)
}

func TestCultivarsForCropSorted(t *testing.T) {
	tables := Default()

	navels := tables.CultivarsForCrop("navel_orange")
	require.Len(t, navels, 4)
	for i := 1; i < len(navels); i++ {
		assert.Less(t, navels[i-1].ID, navels[i].ID)
	}

	assert.Empty(t, tables.CultivarsForCrop("durian"))
}

func TestGrownIn(t *testing.T) {
	tables := Default()

	sunburst := tables.Cultivars["sunburst"]
	assert.True(t, sunburst.GrownIn("indian_river"))
	assert.False(t, sunburst.GrownIn("california_central_valley"))
	assert.True(t, sunburst.GrownIn(""))

	// No region list means grown everywhere.
	dancy := tables.Cultivars["dancy"]
	assert.True(t, dancy.GrownIn("california_central_valley"))
}

func TestRegionRates(t *testing.T) {
	tables := Default()

	// Named regions share their state's row.
	assert.InDelta(t, 26, tables.RegionRates.AveragePerDay("indian_river", time.July), 1e-9)
	assert.InDelta(t, 28, tables.RegionRates.AveragePerDay("california_central_valley", time.July), 1e-9)
	assert.InDelta(t, 26, tables.RegionRates.AveragePerDay("somewhere_else", time.July), 1e-9)
}

func TestLoadOverlay(t *testing.T) {
	overlay := `
cultivars:
  - id: washington_navel
    name: Washington Navel (local trial)
    crop: navel_orange
    base_brix: 11.9
    optimal_gdd: 6050
    gdd_window: 1900
  - id: atwood
    name: Atwood Navel
    crop: navel_orange
    base_brix: 11.3
    optimal_gdd: 6000
    gdd_window: 1800
crops:
  navel_orange:
    base_temp: 55
    gdd_to_maturity: 5000
    gdd_to_peak: 6000
    gdd_window: 1900
region_rates:
  my_test_valley: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]
`
	path := filepath.Join(t.TempDir(), "refdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	tables, err := Load(path)
	require.NoError(t, err)

	// Overlaid entries replace defaults.
	assert.InDelta(t, 11.9, tables.CultivarBase("washington_navel"), 1e-9)
	assert.InDelta(t, 11.3, tables.CultivarBase("atwood"), 1e-9)
	assert.InDelta(t, 5000, tables.TargetsFor("navel_orange").GDDToMaturity, 1e-9)
	assert.InDelta(t, 7, tables.RegionRates.AveragePerDay("my_test_valley", time.July), 1e-9)

	// Untouched defaults survive.
	assert.InDelta(t, 0.6, tables.RootstockModifier("carrizo"), 1e-9)
	assert.InDelta(t, 12.2, tables.CultivarBase("cara_cara"), 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
