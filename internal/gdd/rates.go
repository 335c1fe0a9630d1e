package gdd

import "time"

// RateTable maps a growing region to the average GDD accumulated per day
// in each calendar month (index 0 = January). Used to estimate harvest
// countdowns when no daily weather series is available.
type RateTable map[string][12]float64

// DefaultRegionKey is the row consulted for regions not in the table.
const DefaultRegionKey = "default"

// fallbackMonthlyRates covers tables loaded without a default row.
var fallbackMonthlyRates = [12]float64{5, 7, 12, 16, 20, 24, 26, 25, 20, 14, 8, 5}

// AveragePerDay returns the expected daily GDD for a region and month.
// Unknown regions fall back to the default row; this is a lookup that
// never fails, only degrades.
func (t RateTable) AveragePerDay(region string, month time.Month) float64 {
	rates, ok := t[region]
	if !ok {
		if rates, ok = t[DefaultRegionKey]; !ok {
			rates = fallbackMonthlyRates
		}
	}
	return rates[int(month)-1]
}
