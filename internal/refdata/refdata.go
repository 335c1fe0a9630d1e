// Package refdata holds the read-only reference tables the prediction
// engine consumes: cultivar profiles, rootstock Brix modifiers, crop
// phenology targets, and regional heat accumulation rates. Tables are
// built once and treated as immutable; unknown ids resolve to documented
// neutral defaults so predictions degrade instead of failing.
package refdata

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cropcast/cropcast/internal/gdd"
)

// CropTargets are the phenology milestones for one crop, in GDD units
// above the crop's base temperature.
type CropTargets struct {
	BaseTemp      float64 `yaml:"base_temp"`
	GDDToMaturity float64 `yaml:"gdd_to_maturity"`
	GDDToPeak     float64 `yaml:"gdd_to_peak"`
	// GDDWindow is the half-width of the high-quality band around peak.
	GDDWindow float64 `yaml:"gdd_window"`
	// ChillHours is the dormancy requirement; zero for crops without one.
	ChillHours float64 `yaml:"chill_hours"`
}

// Cultivar is one variety's quality and maturity profile.
type Cultivar struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Crop     string  `yaml:"crop"`
	BaseBrix float64 `yaml:"base_brix"`
	// OptimalGDD is the accumulation at which this cultivar peaks; zero
	// means undefined and excludes it from identity inference.
	OptimalGDD float64 `yaml:"optimal_gdd"`
	GDDWindow  float64 `yaml:"gdd_window"`
	// AlwaysLabeled cultivars never ship under the generic crop name, so
	// they are not inference candidates.
	AlwaysLabeled bool `yaml:"always_labeled"`
	// Regions where the cultivar is grown commercially; empty means
	// everywhere.
	Regions []string `yaml:"regions"`
}

// GrownIn reports whether the cultivar is grown in a region. An empty
// region list or an empty query matches everything.
func (c Cultivar) GrownIn(region string) bool {
	if region == "" || len(c.Regions) == 0 {
		return true
	}
	for _, r := range c.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// Rootstock is one root system's empirical effect on fruit quality.
type Rootstock struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	BrixModifier float64 `yaml:"brix_modifier"`
	Notes        string  `yaml:"notes"`
}

// Tables bundles every reference lookup the engine needs. Load once,
// pass explicitly, never mutate after construction.
type Tables struct {
	Cultivars   map[string]Cultivar
	Rootstocks  map[string]Rootstock
	Crops       map[string]CropTargets
	RegionRates gdd.RateTable
}

// Neutral defaults for unknown reference ids.
const (
	DefaultBaseBrix          = 10.0
	DefaultRootstockModifier = 0.0
)

// defaultCropTargets covers crops with no calibrated phenology row.
var defaultCropTargets = CropTargets{
	BaseTemp:      50,
	GDDToMaturity: 1800,
	GDDToPeak:     2100,
	GDDWindow:     200,
}

// CultivarBase returns the cultivar's base Brix, or the neutral default
// for unknown ids.
func (t *Tables) CultivarBase(id string) float64 {
	if c, ok := t.Cultivars[id]; ok {
		return c.BaseBrix
	}
	return DefaultBaseBrix
}

// RootstockModifier returns the rootstock's Brix adjustment, or zero for
// unknown ids.
func (t *Tables) RootstockModifier(id string) float64 {
	if r, ok := t.Rootstocks[id]; ok {
		return r.BrixModifier
	}
	return DefaultRootstockModifier
}

// TargetsFor returns the phenology targets for a crop, falling back to
// the generic row for unknown crops.
func (t *Tables) TargetsFor(crop string) CropTargets {
	if ct, ok := t.Crops[crop]; ok {
		return ct
	}
	return defaultCropTargets
}

// CultivarsForCrop returns the cultivars registered under a crop, sorted
// by id so downstream scoring is deterministic.
func (t *Tables) CultivarsForCrop(crop string) []Cultivar {
	var out []Cultivar
	for _, c := range t.Cultivars {
		if c.Crop == crop {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fileTables is the YAML overlay format. Entries replace same-keyed
// defaults; everything else is inherited.
type fileTables struct {
	Cultivars   []Cultivar             `yaml:"cultivars"`
	Rootstocks  []Rootstock            `yaml:"rootstocks"`
	Crops       map[string]CropTargets `yaml:"crops"`
	RegionRates map[string][12]float64 `yaml:"region_rates"`
}

// Load returns the built-in tables with the overlay file at path applied
// on top, for operators carrying local calibration data.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}

	var f fileTables
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	t := Default()
	for _, c := range f.Cultivars {
		t.Cultivars[c.ID] = c
	}
	for _, r := range f.Rootstocks {
		t.Rootstocks[r.ID] = r
	}
	for crop, ct := range f.Crops {
		t.Crops[crop] = ct
	}
	for region, rates := range f.RegionRates {
		t.RegionRates[region] = rates
	}
	return t, nil
}
