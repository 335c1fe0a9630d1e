// Package window classifies cumulative heat accumulation against crop
// phenology targets into a harvest status, and estimates the days left
// until maturity.
package window

import (
	"math"

	"github.com/cropcast/cropcast/internal/refdata"
)

// Status is a phenological harvest state. States only move forward
// within a season; a new season starts by resetting the reference date,
// not by walking statuses backward.
type Status string

const (
	StatusPreSeason     Status = "pre_season"
	StatusApproaching   Status = "approaching"
	StatusHarvestWindow Status = "harvest_window"
	StatusPeak          Status = "peak"
	StatusLateSeason    Status = "late_season"
	StatusPostSeason    Status = "post_season"
)

// approachingFraction is the share of the maturity target at which a
// crop moves from pre_season to approaching.
const approachingFraction = 0.80

// Assessment is the classifier output for one crop at one accumulation.
type Assessment struct {
	Status            Status
	PercentToMaturity float64
	PercentToPeak     float64
	// DaysToHarvest is nil once the maturity target is reached ("already
	// available"), or when no positive per-day rate is known.
	DaysToHarvest *int
}

// Classify maps cumulative GDD onto the six-state model. Thresholds, in
// order, all half-open on the right:
//
//	below 80% of maturity        pre_season
//	80% up to maturity           approaching
//	maturity up to peak-window   harvest_window
//	peak-window up to peak+window  peak
//	one further window           late_season
//	beyond                       post_season
//
// For crops whose window half-width exceeds the maturity-to-peak gap,
// harvest_window collapses and accumulation steps straight into peak.
func Classify(currentGDD float64, targets refdata.CropTargets, avgGDDPerDay float64) Assessment {
	a := Assessment{
		Status:            classify(currentGDD, targets),
		PercentToMaturity: percentOf(currentGDD, targets.GDDToMaturity),
		PercentToPeak:     percentOf(currentGDD, targets.GDDToPeak),
	}
	if currentGDD < targets.GDDToMaturity && avgGDDPerDay > 0 {
		days := int(math.Ceil((targets.GDDToMaturity - currentGDD) / avgGDDPerDay))
		a.DaysToHarvest = &days
	}
	return a
}

func classify(currentGDD float64, t refdata.CropTargets) Status {
	// Ordered boundary walk: the first boundary the accumulation has not
	// yet crossed decides the status.
	boundaries := []struct {
		upTo   float64
		status Status
	}{
		{approachingFraction * t.GDDToMaturity, StatusPreSeason},
		{t.GDDToMaturity, StatusApproaching},
		{t.GDDToPeak - t.GDDWindow, StatusHarvestWindow},
		{t.GDDToPeak + t.GDDWindow, StatusPeak},
		{t.GDDToPeak + 2*t.GDDWindow, StatusLateSeason},
	}
	for _, b := range boundaries {
		if currentGDD < b.upTo {
			return b.status
		}
	}
	return StatusPostSeason
}

func percentOf(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return 100 * current / target
}
