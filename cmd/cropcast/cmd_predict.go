package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/log"
	"github.com/cropcast/cropcast/internal/quality"
	"github.com/cropcast/cropcast/internal/refdata"
)

var predictFlags struct {
	cultivar  string
	rootstock string
	age       int
	gdd       float64
	peak      float64
	halfwidth float64
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict fruit quality from cultivar, rootstock, tree age and timing",
	Long: `Compose a Brix prediction from the cultivar's base quality, the
rootstock's empirical modifier, the tree age band, and how far the
current accumulation sits from the quality peak. Unknown cultivar or
rootstock ids fall back to neutral defaults.`,
	RunE: runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictFlags.cultivar, "cultivar", "", "Cultivar id (e.g. washington_navel)")
	f.StringVar(&predictFlags.rootstock, "rootstock", "", "Rootstock id (e.g. carrizo)")
	f.IntVar(&predictFlags.age, "age", -1, "Tree age in years (-1 if unknown)")
	f.Float64Var(&predictFlags.gdd, "gdd", 0, "Cumulative GDD since bloom")
	f.Float64Var(&predictFlags.peak, "peak", 0, "Peak-quality GDD target (default: crop table)")
	f.Float64Var(&predictFlags.halfwidth, "halfwidth", 0, "Quality window half-width (default: crop table)")
	predictCmd.MarkFlagRequired("cultivar")
	predictCmd.MarkFlagRequired("gdd")
}

// timingTargets fills an unset peak or half-width from the cultivar's
// crop phenology row. Unknown cultivars use the generic crop row, so the
// timing modifier still gets a real window instead of degrading to zero.
func timingTargets(tables *refdata.Tables, cultivarID string, peak, halfwidth float64) (float64, float64) {
	var crop string
	if c, ok := tables.Cultivars[cultivarID]; ok {
		crop = c.Crop
	}
	targets := tables.TargetsFor(crop)
	if peak == 0 {
		peak = targets.GDDToPeak
	}
	if halfwidth == 0 {
		halfwidth = targets.GDDWindow
	}
	return peak, halfwidth
}

func runPredict(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	peak, halfwidth := timingTargets(tables, predictFlags.cultivar, predictFlags.peak, predictFlags.halfwidth)
	log.Debugw("predicting", "cultivar", predictFlags.cultivar, "peak", peak, "halfwidth", halfwidth)

	engine := quality.NewEngine(tables)
	p := engine.Predict(predictFlags.cultivar, predictFlags.rootstock, predictFlags.age,
		predictFlags.gdd, peak, halfwidth)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Cultivar base:      %+.1f\n", p.CultivarBase)
	fmt.Fprintf(out, "Rootstock modifier: %+.1f\n", p.RootstockModifier)
	fmt.Fprintf(out, "Age modifier:       %+.1f\n", p.AgeModifier)
	fmt.Fprintf(out, "Timing modifier:    %+.2f\n", p.TimingModifier)
	fmt.Fprintf(out, "Predicted Brix:     %.1f", p.TotalBrix)
	if p.Atypical {
		fmt.Fprint(out, "  (outside typical commercial range)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Predicted acid:     %.2f\n", p.PredictedAcid)
	fmt.Fprintf(out, "Sugar/acid ratio:   %.1f\n", p.Ratio)
	fmt.Fprintf(out, "Flavor index:       %.1f\n", p.FlavorIndex)
	fmt.Fprintf(out, "Harvest status:     %s\n", p.HarvestStatus)
	fmt.Fprintf(out, "Confidence:         %.0f%%\n", p.Confidence*100)
	return nil
}
