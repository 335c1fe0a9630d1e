// Package inference assigns a probability distribution over candidate
// cultivar identities for a generically labeled commodity observation,
// scored by how close the current heat accumulation sits to each
// candidate's optimal maturity point.
package inference

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cropcast/cropcast/internal/refdata"
)

// Reason explains a candidate's score.
type Reason string

const (
	ReasonAtPeak         Reason = "at_peak"
	ReasonEarlySeason    Reason = "early_season"
	ReasonLateSeasonTail Reason = "late_season_tail"
)

const (
	// MaxGDDDelta is the proximity cutoff: candidates farther than this
	// from their optimal accumulation are not plausible identities.
	MaxGDDDelta = 500.0

	// peakDelta is the proximity under which a candidate reads as at
	// peak.
	peakDelta = 100.0

	// scoreScale sets how fast candidate scores decay with distance
	// from optimal.
	scoreScale = 250.0
)

// Probability is one candidate's share of the distribution.
type Probability struct {
	CultivarID  string
	Probability float64
	GDDDelta    float64
	Reason      Reason
	// InHarvestWindow reports whether the accumulation sits inside the
	// candidate's own quality window.
	InHarvestWindow bool
}

// Probabilities ranks the cultivars registered for a crop in a region by
// GDD proximity. Cultivars that always ship under their own name, or
// without a defined optimal accumulation, are never candidates. An empty
// result means no candidate is in range: insufficient signal, not an
// error. Non-empty results sum to 1.0 and are sorted by descending
// probability with cultivar id as the tiebreak.
func Probabilities(crop, region string, currentGDD float64, ref *refdata.Tables) []Probability {
	var out []Probability
	var scores []float64

	for _, c := range ref.CultivarsForCrop(crop) {
		if c.AlwaysLabeled || c.OptimalGDD <= 0 || !c.GrownIn(region) {
			continue
		}
		delta := math.Abs(currentGDD - c.OptimalGDD)
		if delta > MaxGDDDelta {
			continue
		}
		out = append(out, Probability{
			CultivarID:      c.ID,
			GDDDelta:        delta,
			Reason:          reasonFor(currentGDD, c.OptimalGDD, delta),
			InHarvestWindow: delta <= c.GDDWindow,
		})
		scores = append(scores, math.Exp(-delta/scoreScale))
	}
	if len(out) == 0 {
		return nil
	}

	floats.Scale(1/floats.Sum(scores), scores)
	for i := range out {
		out[i].Probability = scores[i]
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Probability != out[j].Probability {
			return out[i].Probability > out[j].Probability
		}
		return out[i].CultivarID < out[j].CultivarID
	})
	return out
}

func reasonFor(currentGDD, optimalGDD, delta float64) Reason {
	switch {
	case delta < peakDelta:
		return ReasonAtPeak
	case currentGDD < optimalGDD:
		return ReasonEarlySeason
	default:
		return ReasonLateSeasonTail
	}
}
