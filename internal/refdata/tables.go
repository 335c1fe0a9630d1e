package refdata

import "github.com/cropcast/cropcast/internal/gdd"

// Default returns the built-in reference tables. Values come from field
// trial summaries and extension service phenology charts; operators can
// overlay local calibrations with Load.
func Default() *Tables {
	return &Tables{
		Cultivars:   defaultCultivars(),
		Rootstocks:  defaultRootstocks(),
		Crops:       defaultCrops(),
		RegionRates: defaultRegionRates(),
	}
}

func defaultCrops() map[string]CropTargets {
	return map[string]CropTargets{
		"navel_orange": {BaseTemp: 55, GDDToMaturity: 5100, GDDToPeak: 6100, GDDWindow: 2000},
		"valencia":     {BaseTemp: 55, GDDToMaturity: 8000, GDDToPeak: 9000, GDDWindow: 2200},
		"grapefruit":   {BaseTemp: 55, GDDToMaturity: 5500, GDDToPeak: 7100, GDDWindow: 4000},
		"tangerine":    {BaseTemp: 55, GDDToMaturity: 5300, GDDToPeak: 5700, GDDWindow: 900},
		"satsuma":      {BaseTemp: 55, GDDToMaturity: 4600, GDDToPeak: 5100, GDDWindow: 700},
		"peach":        {BaseTemp: 45, GDDToMaturity: 1800, GDDToPeak: 2000, GDDWindow: 150, ChillHours: 650},
		"sweet_cherry": {BaseTemp: 40, GDDToMaturity: 1400, GDDToPeak: 1550, GDDWindow: 100, ChillHours: 1100},
		"tart_cherry":  {BaseTemp: 39.2, GDDToMaturity: 1000, GDDToPeak: 1100, GDDWindow: 80, ChillHours: 954},
		"apple":        {BaseTemp: 43, GDDToMaturity: 2200, GDDToPeak: 2500, GDDWindow: 200, ChillHours: 1000},
		"pear":         {BaseTemp: 40, GDDToMaturity: 2400, GDDToPeak: 2700, GDDWindow: 800, ChillHours: 800},
		"strawberry":   {BaseTemp: 50, GDDToMaturity: 700, GDDToPeak: 1300, GDDWindow: 1100},
		"blueberry":    {BaseTemp: 45, GDDToMaturity: 1200, GDDToPeak: 1400, GDDWindow: 100, ChillHours: 800},
		"mango":        {BaseTemp: 60, GDDToMaturity: 2800, GDDToPeak: 3200, GDDWindow: 300},
		"pomegranate":  {BaseTemp: 50, GDDToMaturity: 3800, GDDToPeak: 4500, GDDWindow: 1000, ChillHours: 150},
		"pecan":        {BaseTemp: 65, GDDToMaturity: 2600, GDDToPeak: 2900, GDDWindow: 400, ChillHours: 500},
	}
}

func defaultCultivars() map[string]Cultivar {
	cultivars := []Cultivar{
		{ID: "washington_navel", Name: "Washington Navel", Crop: "navel_orange", BaseBrix: 11.5, OptimalGDD: 6100, GDDWindow: 2000},
		{ID: "cara_cara", Name: "Cara Cara", Crop: "navel_orange", BaseBrix: 12.2, OptimalGDD: 6300, GDDWindow: 1800},
		{ID: "fukumoto", Name: "Fukumoto", Crop: "navel_orange", BaseBrix: 11.8, OptimalGDD: 5700, GDDWindow: 1500},
		{ID: "lane_late", Name: "Lane Late", Crop: "navel_orange", BaseBrix: 11.6, OptimalGDD: 7000, GDDWindow: 2000},
		{ID: "olinda", Name: "Olinda Valencia", Crop: "valencia", BaseBrix: 11.0, OptimalGDD: 9000, GDDWindow: 2200},
		{ID: "midknight", Name: "Midknight Valencia", Crop: "valencia", BaseBrix: 11.4, OptimalGDD: 9300, GDDWindow: 2000},
		{ID: "dancy", Name: "Dancy", Crop: "tangerine", BaseBrix: 12.0, OptimalGDD: 5700, GDDWindow: 900},
		{ID: "sunburst", Name: "Sunburst", Crop: "tangerine", BaseBrix: 11.5, OptimalGDD: 5500, GDDWindow: 900, Regions: []string{"indian_river", "central_florida", "south_florida"}},
		{ID: "owari", Name: "Owari Satsuma", Crop: "satsuma", BaseBrix: 10.8, OptimalGDD: 5100, GDDWindow: 700},
		{ID: "brown_select", Name: "Brown Select Satsuma", Crop: "satsuma", BaseBrix: 10.5, OptimalGDD: 4900, GDDWindow: 700},
		{ID: "ruby_red", Name: "Ruby Red", Crop: "grapefruit", BaseBrix: 9.5, OptimalGDD: 7100, GDDWindow: 4000},
		{ID: "flame", Name: "Flame", Crop: "grapefruit", BaseBrix: 10.0, OptimalGDD: 7200, GDDWindow: 3800},
		{ID: "elberta", Name: "Elberta", Crop: "peach", BaseBrix: 11.0, OptimalGDD: 2000, GDDWindow: 150},
		{ID: "red_haven", Name: "Red Haven", Crop: "peach", BaseBrix: 11.5, OptimalGDD: 1900, GDDWindow: 150},
		{ID: "bing", Name: "Bing", Crop: "sweet_cherry", BaseBrix: 17.0, OptimalGDD: 1550, GDDWindow: 100},
		// Rainier always ships under its own name at a premium; it never
		// appears as generic "cherries".
		{ID: "rainier", Name: "Rainier", Crop: "sweet_cherry", BaseBrix: 18.0, OptimalGDD: 1500, GDDWindow: 100, AlwaysLabeled: true},
		{ID: "gala", Name: "Gala", Crop: "apple", BaseBrix: 12.5, OptimalGDD: 2300, GDDWindow: 200},
		{ID: "fuji", Name: "Fuji", Crop: "apple", BaseBrix: 14.0, OptimalGDD: 2600, GDDWindow: 250},
		{ID: "red_delicious", Name: "Red Delicious", Crop: "apple", BaseBrix: 11.8, OptimalGDD: 2500, GDDWindow: 200},
		{ID: "honeycrisp", Name: "Honeycrisp", Crop: "apple", BaseBrix: 13.5, OptimalGDD: 2400, GDDWindow: 200, AlwaysLabeled: true},
	}

	out := make(map[string]Cultivar, len(cultivars))
	for _, c := range cultivars {
		out[c.ID] = c
	}
	return out
}

func defaultRootstocks() map[string]Rootstock {
	rootstocks := []Rootstock{
		{ID: "carrizo", Name: "Carrizo citrange", BrixModifier: 0.6, Notes: "vigorous, good fruit quality"},
		{ID: "c35", Name: "C-35 citrange", BrixModifier: 0.6, Notes: "semi-dwarfing, high quality"},
		{ID: "sour_orange", Name: "Sour orange", BrixModifier: 0.5, Notes: "excellent quality, CTV susceptible"},
		{ID: "trifoliate", Name: "Trifoliate orange", BrixModifier: 0.5, Notes: "cold hardy, slow growing"},
		{ID: "cleopatra", Name: "Cleopatra mandarin", BrixModifier: 0.2, Notes: "salt tolerant"},
		{ID: "swingle", Name: "Swingle citrumelo", BrixModifier: -0.5, Notes: "widely planted, dilutes solids"},
		{ID: "rough_lemon", Name: "Rough lemon", BrixModifier: -0.7, Notes: "very vigorous, low solids"},
		{ID: "volkamer", Name: "Volkamer lemon", BrixModifier: -0.7, Notes: "vigorous, low solids"},
		{ID: "macrophylla", Name: "Alemow (macrophylla)", BrixModifier: -0.8, Notes: "lemon rootstock, poor orange quality"},
	}

	out := make(map[string]Rootstock, len(rootstocks))
	for _, r := range rootstocks {
		out[r.ID] = r
	}
	return out
}

// Monthly average GDD per day by state, January through December.
var stateMonthlyRates = map[string][12]float64{
	"FL": {15, 17, 20, 23, 25, 26, 26, 26, 25, 22, 18, 15},
	"CA": {10, 12, 15, 18, 22, 25, 28, 27, 24, 19, 13, 10},
	"TX": {12, 14, 18, 22, 26, 28, 30, 30, 27, 22, 16, 12},
	"GA": {8, 10, 15, 20, 24, 27, 28, 28, 25, 18, 12, 8},
	"WA": {2, 4, 8, 12, 16, 20, 24, 23, 18, 11, 5, 2},
	"OR": {2, 4, 8, 12, 16, 20, 24, 23, 18, 11, 5, 2},
	"MI": {0, 2, 6, 12, 18, 22, 25, 24, 18, 10, 4, 0},
	"WI": {0, 2, 6, 12, 18, 22, 25, 24, 18, 10, 4, 0},
	"NY": {0, 2, 6, 12, 18, 22, 25, 24, 18, 10, 4, 0},
	"PA": {0, 2, 6, 12, 18, 22, 25, 24, 18, 10, 4, 0},
	"OH": {0, 2, 6, 12, 18, 22, 25, 24, 18, 10, 4, 0},
	"NJ": {2, 4, 8, 14, 20, 24, 26, 25, 20, 12, 6, 2},
	"NC": {6, 8, 12, 18, 22, 26, 28, 27, 24, 16, 10, 6},
	"SC": {8, 10, 14, 20, 24, 27, 28, 28, 25, 18, 12, 8},
}

// regionState maps named growing regions onto the state rate rows.
var regionState = map[string]string{
	"indian_river":               "FL",
	"central_florida":            "FL",
	"south_florida":              "FL",
	"georgia_piedmont":           "GA",
	"texas_rgv":                  "TX",
	"texas_hill_country":         "TX",
	"texas_pecan_belt":           "TX",
	"california_central_valley":  "CA",
	"california_coastal":         "CA",
	"california_southern_desert": "CA",
	"pacific_nw_yakima":          "WA",
	"pacific_nw_wenatchee":       "WA",
	"pacific_nw_hood_river":      "OR",
	"michigan_west":              "MI",
	"michigan_southwest":         "MI",
	"wisconsin_door_county":      "WI",
	"new_york_hudson_valley":     "NY",
	"new_york_finger_lakes":      "NY",
	"pennsylvania_adams_county":  "PA",
	"new_jersey_pine_barrens":    "NJ",
}

func defaultRegionRates() gdd.RateTable {
	t := gdd.RateTable{
		gdd.DefaultRegionKey: {5, 7, 12, 16, 20, 24, 26, 25, 20, 14, 8, 5},
	}
	for state, rates := range stateMonthlyRates {
		t[state] = rates
	}
	for region, state := range regionState {
		t[region] = stateMonthlyRates[state]
	}
	return t
}
