package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/inference"
	"github.com/cropcast/cropcast/internal/log"
)

var inferFlags struct {
	crop   string
	region string
	gdd    float64
}

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer likely cultivar identities for a generically labeled crop",
	Long: `Rank the cultivars registered for a crop by how close the current heat
accumulation sits to each one's optimal maturity point. An empty result
means the accumulation matches nobody within range: insufficient
signal, not a failure.`,
	RunE: runInfer,
}

func init() {
	f := inferCmd.Flags()
	f.StringVar(&inferFlags.crop, "crop", "", "Crop id on the generic label")
	f.StringVar(&inferFlags.region, "region", "", "Growing region of the observation")
	f.Float64Var(&inferFlags.gdd, "gdd", 0, "Cumulative GDD since bloom")
	inferCmd.MarkFlagRequired("crop")
	inferCmd.MarkFlagRequired("gdd")
}

func runInfer(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	probs := inference.Probabilities(inferFlags.crop, inferFlags.region, inferFlags.gdd, tables)
	if len(probs) == 0 {
		log.Debugw("no candidates in range", "crop", inferFlags.crop, "gdd", inferFlags.gdd)
		fmt.Fprintln(out, "No cultivar candidate within range: insufficient signal.")
		return nil
	}

	fmt.Fprintf(out, "%-20s %12s %10s %-18s %s\n", "CULTIVAR", "PROBABILITY", "GDD DELTA", "REASON", "IN WINDOW")
	for _, p := range probs {
		inWindow := "no"
		if p.InHarvestWindow {
			inWindow = "yes"
		}
		fmt.Fprintf(out, "%-20s %11.1f%% %10.0f %-18s %s\n",
			p.CultivarID, p.Probability*100, p.GDDDelta, p.Reason, inWindow)
	}
	return nil
}
