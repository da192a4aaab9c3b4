package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sky/skygo/internal/convert"
)

var (
	convertFrom string
	convertTo   string

	convertCmd = &cobra.Command{
		Use:   "convert LON LAT [LON LAT ...]",
		Short: "Convert one or more positions between coordinate systems.",
		Long: `Converts (longitude, latitude) pairs, in degrees, from the source
system to the target system. Multiple pairs share one precomputed
rotation. Results are printed one pair per line.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("coordinates must come in lon/lat pairs, got %d values", len(args))
			}

			source, err := parseSystem(convertFrom)
			if err != nil {
				return err
			}
			target, err := parseSystem(convertTo)
			if err != nil {
				return err
			}

			coords := make([]float64, len(args))
			for i, a := range args {
				coords[i], err = strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", a)
				}
			}

			positions, err := convert.ConvertBatch(source, target, coords)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range positions {
				fmt.Fprintf(out, "%.9f %.9f\n", p.Lon, p.Lat)
			}
			return nil
		},
	}
)

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "eq,ICRS", "source system descriptor")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "galactic", "target system descriptor")
	rootCmd.AddCommand(convertCmd)
}
