package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/formula"
)

var versionsFlags struct {
	weatherPath string
	bloom       string
	crop        string
	region      string
	baseTemp    float64
	heatCap     float64
	waterStress float64
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List registered formula versions and compare them on a weather series",
	Long: `Without a weather file, list the formula registry with deployment dates
and measured accuracy. With --weather and --bloom, additionally run
every version over the same series and report how each diverges from
the recommended one. Diagnostics only; predictions always run a single
selected version.`,
	RunE: runVersions,
}

func init() {
	f := versionsCmd.Flags()
	f.StringVarP(&versionsFlags.weatherPath, "weather", "w", "", "Weather samples YAML file for a comparison run")
	f.StringVar(&versionsFlags.bloom, "bloom", "", "Bloom/reference date (YYYY-MM-DD)")
	f.StringVar(&versionsFlags.crop, "crop", "", "Crop id for the recommendation")
	f.StringVar(&versionsFlags.region, "region", "", "Region id for the recommendation")
	f.Float64Var(&versionsFlags.baseTemp, "base-temp", 55, "Crop base temperature")
	f.Float64Var(&versionsFlags.heatCap, "heat-cap", 86, "Heat stress cap for v2/v3")
	f.Float64Var(&versionsFlags.waterStress, "water-stress", 0.85, "Water stress modifier for v3")
}

func runVersions(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-4s %-52s %-12s %s\n", "TAG", "DESCRIPTION", "DEPLOYED", "MAE (DAYS)")
	for _, e := range formula.Versions() {
		fmt.Fprintf(out, "%-4s %-52s %-12s %.1f\n",
			e.Version, e.Description, e.DeployedAt.Format("2006-01-02"), e.MeanAbsoluteError)
	}

	if versionsFlags.weatherPath == "" {
		return nil
	}
	samples, err := loadSamples(versionsFlags.weatherPath)
	if err != nil {
		return err
	}
	bloom, err := parseDate("bloom", versionsFlags.bloom)
	if err != nil {
		return err
	}

	comps, err := formula.Compare(samples, bloom, formula.Params{
		BaseTemp:            versionsFlags.baseTemp,
		HeatStressCap:       versionsFlags.heatCap,
		WaterStressModifier: versionsFlags.waterStress,
	}, versionsFlags.crop, versionsFlags.region)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nComparison over %d samples:\n", len(samples))
	fmt.Fprintf(out, "%-4s %12s %18s %s\n", "TAG", "TOTAL GDD", "MEAN DAILY DELTA", "RECOMMENDED")
	for _, c := range comps {
		mark := ""
		if c.Recommended {
			mark = "<-- recommended"
		}
		fmt.Fprintf(out, "%-4s %12.1f %18.2f %s\n", c.Entry.Version, c.Total, c.MeanDailyDelta, mark)
	}
	return nil
}
