// Package formula provides the versioned growing degree day variants and
// the registry metadata behind them. Versions form a closed, append-only
// set; an unrecognized version is always a hard error so audit trails
// never silently mix formulas.
package formula

import (
	"errors"
	"fmt"
	"time"

	"github.com/cropcast/cropcast/internal/gdd"
)

// Version tags one registered GDD formula variant.
type Version string

const (
	// V1 is the basic average-of-extremes formula.
	V1 Version = "v1"
	// V2 caps tempMax at the heat stress threshold before averaging.
	V2 Version = "v2"
	// V3 scales the v2 result by a water stress modifier.
	V3 Version = "v3"

	// Current is the default production version.
	Current = V1
	// Latest is the newest registered version, used for heat-sensitive
	// crops and drought-prone regions.
	Latest = V3
)

var (
	// ErrUnknownVersion rejects version tags outside the registry.
	ErrUnknownVersion = errors.New("unknown formula version")
	// ErrInvalidParams rejects parameter sets a version cannot run with.
	ErrInvalidParams = errors.New("invalid formula parameters")
)

// Params selects a formula version and carries its inputs.
type Params struct {
	Version  Version
	BaseTemp float64
	// HeatStressCap is the tempMax ceiling applied by v2 and v3; both
	// require it to be positive.
	HeatStressCap float64
	// WaterStressModifier scales the v3 result. Negative inputs are
	// accepted; the computed GDD is clamped to zero instead of going
	// negative.
	WaterStressModifier float64
}

// validate checks that the parameter set can run the selected version.
func (p Params) validate() error {
	switch p.Version {
	case V1:
		return nil
	case V2, V3:
		if p.HeatStressCap <= 0 {
			return fmt.Errorf("%w: %s requires a positive heat stress cap", ErrInvalidParams, p.Version)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVersion, p.Version)
	}
}

// Calculate returns one day's GDD under the selected version. Dispatch
// is on the version tag alone; adding a version never changes existing
// variants.
func Calculate(tempMax, tempMin float64, p Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	switch p.Version {
	case V2:
		return cappedDaily(tempMax, tempMin, p), nil
	case V3:
		g := cappedDaily(tempMax, tempMin, p) * p.WaterStressModifier
		if g < 0 {
			return 0, nil
		}
		return g, nil
	default: // V1; validate already rejected anything unregistered
		return gdd.Daily(tempMax, tempMin, p.BaseTemp), nil
	}
}

// cappedDaily clamps the daily high to the heat stress cap before the
// usual average-minus-base. Heat above the cap stops contributing to
// development instead of accelerating it.
func cappedDaily(tempMax, tempMin float64, p Params) float64 {
	if tempMax > p.HeatStressCap {
		tempMax = p.HeatStressCap
	}
	return gdd.Daily(tempMax, tempMin, p.BaseTemp)
}

// CumulativeResult is the per-day breakdown of a versioned accumulation
// run, tagged with the version that produced it.
type CumulativeResult struct {
	Version Version
	Days    []gdd.Accumulation
	Total   float64
}

// CalculateCumulative sums the versioned daily values over all samples
// on or after the reference date. Sample validation and ordering follow
// the base tracker.
func CalculateCumulative(samples []gdd.Sample, referenceDate time.Time, p Params) (*CumulativeResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	days, err := gdd.Accumulate(samples, referenceDate, func(s gdd.Sample) float64 {
		g, _ := Calculate(s.TempMax, s.TempMin, p) // params validated above; cannot fail
		return g
	})
	if err != nil {
		return nil, err
	}

	res := &CumulativeResult{Version: p.Version, Days: days}
	if n := len(days); n > 0 {
		res.Total = days[n-1].Cumulative
	}
	return res, nil
}

// heatSensitiveCrops are crops whose development models cap daily highs;
// extreme heat stalls them rather than ripening them faster.
var heatSensitiveCrops = map[string]bool{
	"tomato": true,
	"pepper": true,
}

// droughtProneRegions accumulate meaningful water stress in a typical
// season, so their predictions use the water-stressed variant.
var droughtProneRegions = map[string]bool{
	"texas_rgv":                  true,
	"texas_hill_country":         true,
	"california_central_valley":  true,
	"california_southern_desert": true,
}

// Recommended returns the version production predictions should use for
// a crop and region. Pure lookup, no I/O.
func Recommended(crop, region string) Version {
	if heatSensitiveCrops[crop] || droughtProneRegions[region] {
		return Latest
	}
	return Current
}
