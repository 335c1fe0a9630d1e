// Package quality composes cultivar, rootstock, tree age and harvest
// timing effects into a single fruit quality prediction, and provides
// the generic sugar/acid curve model for crops without calibration
// tables.
package quality

import (
	"math"

	"github.com/cropcast/cropcast/internal/refdata"
	"github.com/cropcast/cropcast/internal/window"
)

// Brix clamp and typicality bounds. The sensor range is physical; the
// typical range is commercial.
const (
	BrixMin        = 0.0
	BrixMax        = 30.0
	TypicalBrixMin = 6.0
	TypicalBrixMax = 19.0
)

// Confidence levels keyed on whether tree age was supplied.
const (
	confidenceAgeKnown   = 0.8
	confidenceAgeUnknown = 0.6
)

// ageBands is the ordered boundary table for the tree age effect on
// Brix: each row applies up to and including its maxAge. No
// interpolation between bands.
var ageBands = []struct {
	maxAge   int
	modifier float64
}{
	{2, -0.8},  // juvenile
	{4, -0.5},  // transition
	{7, -0.2},  // developing
	{18, 0.0},  // prime
	{25, -0.2}, // mature
}

// declineModifier applies beyond the last band.
const declineModifier = -0.3

// AgeModifier returns the Brix adjustment for tree age in years.
// Negative ages mean unknown and score as prime.
func AgeModifier(years int) float64 {
	if years < 0 {
		return 0
	}
	for _, b := range ageBands {
		if years <= b.maxAge {
			return b.modifier
		}
	}
	return declineModifier
}

// Timing penalty shape: free inside half the window half-width, then a
// parabola in the normalized distance, floored so an arbitrarily
// mistimed harvest never produces unbounded negative quality.
const (
	// DefaultTimingScale is the penalty scale used by the composition
	// path.
	DefaultTimingScale = 1.0

	timingPlateau     = 0.5
	timingFloorFactor = 1.5
)

// TimingModifier returns the Brix adjustment for harvest timing at the
// default penalty scale.
func TimingModifier(currentGDD, peakGDD, halfwidth float64) float64 {
	return TimingModifierScaled(currentGDD, peakGDD, halfwidth, DefaultTimingScale)
}

// TimingModifierScaled evaluates the timing penalty with an explicit
// scale. With r = |currentGDD-peakGDD| / halfwidth: r <= 0.5 costs
// nothing, beyond that the penalty is scale*r*r capped at 1.5*scale.
func TimingModifierScaled(currentGDD, peakGDD, halfwidth, scale float64) float64 {
	if halfwidth <= 0 {
		return 0
	}
	r := math.Abs(currentGDD-peakGDD) / halfwidth
	if r <= timingPlateau {
		return 0
	}
	penalty := scale * r * r
	if floor := timingFloorFactor * scale; penalty > floor {
		penalty = floor
	}
	return -penalty
}

// Prediction is the component breakdown of one quality estimate.
type Prediction struct {
	CultivarID        string
	RootstockID       string
	CultivarBase      float64
	RootstockModifier float64
	AgeModifier       float64
	TimingModifier    float64
	TotalBrix         float64
	PredictedAcid     float64
	Ratio             float64
	FlavorIndex       float64
	Confidence        float64
	HarvestStatus     window.Status
	// Atypical marks a Brix outside the commercial range. The value is
	// reported anyway; only the sensor clamp alters it.
	Atypical bool
}

// Engine evaluates predictions against one immutable set of reference
// tables.
type Engine struct {
	ref *refdata.Tables
}

// NewEngine returns an engine bound to the given tables. The engine
// holds no other state; calls are pure and safe to run concurrently.
func NewEngine(ref *refdata.Tables) *Engine {
	return &Engine{ref: ref}
}

// Predict composes the modifier-based quality estimate. Unknown
// cultivar or rootstock ids resolve to neutral defaults rather than
// failing; treeAge below zero means unknown and costs confidence, not
// quality.
func (e *Engine) Predict(cultivarID, rootstockID string, treeAge int, currentGDD, peakGDD, halfwidth float64) Prediction {
	p := Prediction{
		CultivarID:        cultivarID,
		RootstockID:       rootstockID,
		CultivarBase:      e.ref.CultivarBase(cultivarID),
		RootstockModifier: e.ref.RootstockModifier(rootstockID),
		AgeModifier:       AgeModifier(treeAge),
		TimingModifier:    TimingModifier(currentGDD, peakGDD, halfwidth),
	}

	total := p.CultivarBase + p.RootstockModifier + p.AgeModifier + p.TimingModifier
	p.TotalBrix = clamp(total, BrixMin, BrixMax)
	p.Atypical = p.TotalBrix < TypicalBrixMin || p.TotalBrix > TypicalBrixMax

	var crop string
	if c, ok := e.ref.Cultivars[cultivarID]; ok {
		crop = c.Crop
	}
	curve := CurveFor(crop)
	p.PredictedAcid = curve.TA0 * math.Exp(-curve.DecayRate*currentGDD)
	if p.PredictedAcid > 0 {
		p.Ratio = p.TotalBrix / p.PredictedAcid
	}
	p.FlavorIndex = FlavorIndex(p.TotalBrix, p.PredictedAcid)

	p.HarvestStatus = window.Classify(currentGDD, e.ref.TargetsFor(crop), 0).Status

	if treeAge >= 0 {
		p.Confidence = confidenceAgeKnown
	} else {
		p.Confidence = confidenceAgeUnknown
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
