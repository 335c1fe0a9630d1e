package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/quality"
)

var sugarFlags struct {
	gdd  float64
	crop string
}

var sugarCmd = &cobra.Command{
	Use:   "sugar",
	Short: "Estimate sugar and acid development at a cumulative GDD",
	Long: `Evaluate the generic development curves: a logistic soluble solids
(Brix) curve and an exponential acid decay. With --crop the calibrated
per-crop parameters are used; otherwise the generic defaults.`,
	RunE: runSugar,
}

func init() {
	f := sugarCmd.Flags()
	f.Float64Var(&sugarFlags.gdd, "gdd", 0, "Cumulative GDD since bloom")
	f.StringVar(&sugarFlags.crop, "crop", "", "Crop id for calibrated curve parameters")
	sugarCmd.MarkFlagRequired("gdd")
}

func runSugar(cmd *cobra.Command, args []string) error {
	est := quality.EstimateSugarAcid(sugarFlags.gdd, quality.CurveFor(sugarFlags.crop))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "At %.0f GDD:\n", est.GDD)
	fmt.Fprintf(out, "  Soluble solids:  %.1f °Brix\n", est.SSC)
	fmt.Fprintf(out, "  Titratable acid: %.2f%%\n", est.TA)
	fmt.Fprintf(out, "  Sugar/acid:      %.1f\n", est.Ratio)
	fmt.Fprintf(out, "  Flavor index:    %.1f\n", est.FlavorIndex)
	return nil
}
