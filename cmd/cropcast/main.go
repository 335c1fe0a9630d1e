// cropcast predicts harvest timing and fruit quality from accumulated
// heat, and infers cultivar identities for generically labeled produce.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cropcast/cropcast/internal/log"
	"github.com/cropcast/cropcast/internal/refdata"
)

var rootFlags struct {
	debug       bool
	refdataPath string
}

var rootCmd = &cobra.Command{
	Use:   "cropcast",
	Short: "Harvest timing and fruit quality prediction from accumulated heat",
	Long: `cropcast turns daily temperature extremes into growing degree days and
answers the questions growers and buyers actually ask: how far along is
this crop, when does the harvest window open, how good will the fruit
be, and which cultivar is this generically labeled fruit most likely
to be.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(rootFlags.debug)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&rootFlags.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&rootFlags.refdataPath, "refdata", "", "Reference data overlay file (YAML)")

	rootCmd.AddCommand(gddCmd, windowCmd, predictCmd, sugarCmd, inferCmd, versionsCmd)
}

// loadTables returns the built-in reference tables, with the operator's
// overlay applied when --refdata is set.
func loadTables() (*refdata.Tables, error) {
	if rootFlags.refdataPath == "" {
		return refdata.Default(), nil
	}
	return refdata.Load(rootFlags.refdataPath)
}

func main() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
