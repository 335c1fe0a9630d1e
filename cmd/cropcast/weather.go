package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cropcast/cropcast/internal/gdd"
)

// weatherFile is the on-disk shape of a daily extremes series.
type weatherFile struct {
	Samples []struct {
		Date    string  `yaml:"date"`
		TempMax float64 `yaml:"temp_max"`
		TempMin float64 `yaml:"temp_min"`
	} `yaml:"samples"`
}

// loadSamples reads a weather YAML file into engine samples. Dates are
// plain YYYY-MM-DD; the engine only cares about whole days.
func loadSamples(path string) ([]gdd.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weather file: %w", err)
	}

	var f weatherFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse weather file: %w", err)
	}

	samples := make([]gdd.Sample, 0, len(f.Samples))
	for _, s := range f.Samples {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return nil, fmt.Errorf("parse sample date %q: %w", s.Date, err)
		}
		samples = append(samples, gdd.Sample{Date: d, TempMax: s.TempMax, TempMin: s.TempMin})
	}
	return samples, nil
}

func parseDate(flag, value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --%s %q: expected YYYY-MM-DD", flag, value)
	}
	return d, nil
}
