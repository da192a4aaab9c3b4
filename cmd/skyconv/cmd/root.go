// Package cmd implements the skyconv command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sky/skygo/internal/crs"
	"github.com/sky/skygo/internal/frame"
)

// rootCmd is the base command; all functionality lives in subcommands.
var rootCmd = &cobra.Command{
	Use:   "skyconv",
	Short: "Convert celestial coordinates between reference systems.",
	Long: `skyconv converts sky positions between equatorial, ecliptic, galactic
and supergalactic coordinates, across the ICRS, FK4, FK4-NO-E, FK5 and
dynamical J2000 reference frames.

Coordinate systems are written as comma-separated descriptors:

    system[,frame[,equinox[,obs-epoch]]]

for example "galactic", "eq,ICRS", "equatorial,FK5,J2025" or
"eq,FK4,B1950,B1983.5". Equinoxes and epochs accept the usual
specifications: B1950, J2000.5, JD2451545, MJD51544.5, RJD, FITS dates
(F2008-03-31T12:00).`,
	SilenceUsage: true,
}

// Execute runs the skyconv CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseSystem turns a compact descriptor into a coordinate reference
// system. String parsing happens here, at the CLI boundary; the
// conversion core only sees resolved values.
func parseSystem(spec string) (crs.System, error) {
	parts := strings.Split(spec, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	kind, err := crs.ParseKind(parts[0])
	if err != nil {
		return crs.System{}, err
	}

	if !kind.HasFrame() {
		if len(parts) > 1 {
			return crs.System{}, fmt.Errorf("%s coordinates take no reference frame", kind)
		}
		if kind == crs.Galactic {
			return crs.NewGalactic(), nil
		}
		return crs.NewSupergalactic(), nil
	}

	fk := frame.ICRS
	if len(parts) > 1 && parts[1] != "" {
		fk, err = frame.ParseKind(parts[1])
		if err != nil {
			return crs.System{}, err
		}
	}

	f := frame.New(fk)
	if len(parts) > 2 && parts[2] != "" {
		f, err = f.WithEquinox(parts[2])
		if err != nil {
			return crs.System{}, err
		}
	}
	if len(parts) > 3 && parts[3] != "" {
		f, err = f.WithObsEpoch(parts[3])
		if err != nil {
			return crs.System{}, err
		}
	}
	if len(parts) > 4 {
		return crs.System{}, fmt.Errorf("too many fields in system descriptor %q", spec)
	}

	if kind == crs.Ecliptic {
		return crs.NewEcliptic(f), nil
	}
	return crs.NewEquatorial(f), nil
}
