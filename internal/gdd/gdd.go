// Package gdd computes growing degree day accumulation from daily
// temperature extremes. GDD is the phenological clock for this engine:
// crops mature on accumulated heat above a base temperature, not on
// calendar time.
package gdd

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidSample indicates a weather sample with impossible extremes.
var ErrInvalidSample = errors.New("invalid weather sample")

// Sample is a single day's temperature extremes in degrees Fahrenheit.
type Sample struct {
	Date    time.Time
	TempMax float64
	TempMin float64
}

// Accumulation is one day's contribution to the running GDD total.
type Accumulation struct {
	Date              time.Time
	Daily             float64
	Cumulative        float64
	DaysFromReference int
}

// Daily returns the growing degree days for one day: the average of the
// extremes minus the crop base temperature, floored at zero. Days colder
// than the base contribute nothing rather than subtracting heat.
func Daily(tempMax, tempMin, baseTemp float64) float64 {
	g := (tempMax+tempMin)/2 - baseTemp
	if g < 0 {
		return 0
	}
	return g
}

// Cumulative accumulates Daily over all samples on or after the
// reference (bloom) date. Input order does not matter; samples are
// sorted by date before summing. Any sample with TempMax below TempMin
// rejects the whole call with no partial output.
func Cumulative(samples []Sample, referenceDate time.Time, baseTemp float64) ([]Accumulation, error) {
	return Accumulate(samples, referenceDate, func(s Sample) float64 {
		return Daily(s.TempMax, s.TempMin, baseTemp)
	})
}

// Accumulate runs an arbitrary per-day GDD function over the samples on
// or after the reference date, producing the ordered per-day breakdown
// with running totals. Versioned formula variants share this loop.
func Accumulate(samples []Sample, referenceDate time.Time, daily func(Sample) float64) ([]Accumulation, error) {
	for _, s := range samples {
		if s.TempMax < s.TempMin {
			return nil, fmt.Errorf("%w: %s has max %.1f below min %.1f",
				ErrInvalidSample, s.Date.Format("2006-01-02"), s.TempMax, s.TempMin)
		}
	}

	ref := truncateToDay(referenceDate)
	inSeason := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if !truncateToDay(s.Date).Before(ref) {
			inSeason = append(inSeason, s)
		}
	}
	sort.Slice(inSeason, func(i, j int) bool {
		return inSeason[i].Date.Before(inSeason[j].Date)
	})

	out := make([]Accumulation, 0, len(inSeason))
	running := 0.0
	for _, s := range inSeason {
		d := daily(s)
		running += d
		out = append(out, Accumulation{
			Date:              s.Date,
			Daily:             d,
			Cumulative:        running,
			DaysFromReference: int(math.Round(truncateToDay(s.Date).Sub(ref).Hours() / 24)),
		})
	}
	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
