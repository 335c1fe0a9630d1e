package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/log"
	"github.com/cropcast/cropcast/internal/window"
)

var windowFlags struct {
	crop   string
	region string
	gdd    float64
	date   string
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Classify the harvest window for a crop at a cumulative GDD",
	RunE:  runWindow,
}

func init() {
	f := windowCmd.Flags()
	f.StringVar(&windowFlags.crop, "crop", "", "Crop id (e.g. navel_orange, peach)")
	f.StringVar(&windowFlags.region, "region", "", "Growing region for the per-day rate estimate")
	f.Float64Var(&windowFlags.gdd, "gdd", 0, "Cumulative GDD since bloom")
	f.StringVar(&windowFlags.date, "date", "", "Observation date for the rate lookup (YYYY-MM-DD, default today)")
	windowCmd.MarkFlagRequired("crop")
	windowCmd.MarkFlagRequired("gdd")
}

func runWindow(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	when := time.Now().UTC()
	if windowFlags.date != "" {
		if when, err = parseDate("date", windowFlags.date); err != nil {
			return err
		}
	}

	targets := tables.TargetsFor(windowFlags.crop)
	rate := tables.RegionRates.AveragePerDay(windowFlags.region, when.Month())
	log.Debugw("classifying", "crop", windowFlags.crop, "rate", rate)

	a := window.Classify(windowFlags.gdd, targets, rate)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Crop:              %s\n", windowFlags.crop)
	fmt.Fprintf(out, "Status:            %s\n", a.Status)
	fmt.Fprintf(out, "Maturity progress: %.1f%%\n", a.PercentToMaturity)
	fmt.Fprintf(out, "Peak progress:     %.1f%%\n", a.PercentToPeak)
	if a.DaysToHarvest != nil {
		fmt.Fprintf(out, "Days to harvest:   %d (at %.1f GDD/day)\n", *a.DaysToHarvest, rate)
	} else {
		fmt.Fprintln(out, "Days to harvest:   already available")
	}
	return nil
}
