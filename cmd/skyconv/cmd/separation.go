package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sky/skygo/internal/convert"
)

var (
	sepSys1 string
	sepSys2 string

	separationCmd = &cobra.Command{
		Use:   "separation LON1 LAT1 LON2 LAT2",
		Short: "Angular distance between two positions, in degrees.",
		Long: `Computes the angular separation between two sky positions. The
positions may be expressed in different coordinate systems; the first is
converted into the second's system before taking the arc.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s1, err := parseSystem(sepSys1)
			if err != nil {
				return err
			}
			s2, err := parseSystem(sepSys2)
			if err != nil {
				return err
			}

			var vals [4]float64
			for i, a := range args {
				vals[i], err = strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", a)
				}
			}

			sep, err := convert.Separation(
				convert.Position{Lon: vals[0], Lat: vals[1], System: s1},
				convert.Position{Lon: vals[2], Lat: vals[3], System: s2},
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.9f\n", sep)
			return nil
		},
	}
)

func init() {
	separationCmd.Flags().StringVar(&sepSys1, "sys1", "eq,ICRS", "system of the first position")
	separationCmd.Flags().StringVar(&sepSys2, "sys2", "eq,ICRS", "system of the second position")
	rootCmd.AddCommand(separationCmd)
}
