package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sky/skygo/internal/epoch"
)

var epochCmd = &cobra.Command{
	Use:   "epoch SPEC",
	Short: "Parse an epoch specification and print all its scales.",
	Long: `Parses an epoch specification (B1950, J2000.5, JD2451545,
MJD51544.5, RJD51545, F2008-03-31T12:00) and prints the Besselian epoch,
Julian epoch and Julian date it denotes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := epoch.Parse(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "besselian   B%.9f\n", e.Besselian)
		fmt.Fprintf(out, "julian      J%.9f\n", e.Julian)
		fmt.Fprintf(out, "julian date %.6f\n", e.JulianDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(epochCmd)
}
