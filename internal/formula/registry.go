package formula

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/cropcast/cropcast/internal/gdd"
)

// Entry is the immutable audit record for one registered version.
type Entry struct {
	Version     Version
	Description string
	DeployedAt  time.Time
	// MeanAbsoluteError is the measured harvest-date error, in days,
	// over the validation seasons the version was scored against.
	MeanAbsoluteError float64
}

// registry is append-only; entries are never mutated or removed once a
// version has shipped.
var registry = []Entry{
	{
		Version:           V1,
		Description:       "average of daily extremes minus base temperature",
		DeployedAt:        time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		MeanAbsoluteError: 4.2,
	},
	{
		Version:           V2,
		Description:       "daily high capped at the crop heat stress threshold",
		DeployedAt:        time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
		MeanAbsoluteError: 3.1,
	},
	{
		Version:           V3,
		Description:       "heat-capped accumulation scaled by water stress",
		DeployedAt:        time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		MeanAbsoluteError: 2.6,
	},
}

// Versions returns the registered entries in deployment order. The
// returned slice is a copy; the registry itself cannot be modified.
func Versions() []Entry {
	return append([]Entry(nil), registry...)
}

// Metadata returns the registry entry for a version.
func Metadata(v Version) (Entry, error) {
	for _, e := range registry {
		if e.Version == v {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownVersion, v)
}

// Comparison reports one version's result over a shared input series.
type Comparison struct {
	Entry Entry
	Total float64
	// Recommended marks the version Recommended(crop, region) selects.
	Recommended bool
	// MeanDailyDelta is the average absolute difference between this
	// version's daily values and the recommended version's.
	MeanDailyDelta float64
}

// Compare evaluates every registered version on identical inputs and
// tags the recommended one. Diagnostics only: production predictions
// must run a single selected version, never this sweep.
func Compare(samples []gdd.Sample, referenceDate time.Time, p Params, crop, region string) ([]Comparison, error) {
	recommended := Recommended(crop, region)

	results := make(map[Version]*CumulativeResult, len(registry))
	for _, e := range registry {
		vp := p
		vp.Version = e.Version
		res, err := CalculateCumulative(samples, referenceDate, vp)
		if err != nil {
			return nil, err
		}
		results[e.Version] = res
	}

	baseline := results[recommended]
	out := make([]Comparison, 0, len(registry))
	for _, e := range registry {
		res := results[e.Version]
		c := Comparison{
			Entry:       e,
			Total:       res.Total,
			Recommended: e.Version == recommended,
		}
		if len(res.Days) > 0 {
			deltas := make([]float64, len(res.Days))
			for i, d := range res.Days {
				deltas[i] = math.Abs(d.Daily - baseline.Days[i].Daily)
			}
			c.MeanDailyDelta = stat.Mean(deltas, nil)
		}
		out = append(out, c)
	}
	return out, nil
}
