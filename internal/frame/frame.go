// Package frame defines the celestial reference frames the converter knows
// about and the per-frame data (equinox, epoch of observation) the matrix
// builders need.
//
// A Frame is a value: the With* methods return modified copies, so a Frame
// can be shared freely across concurrent conversions once constructed.
package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/sky/skygo/internal/epoch"
)

// Kind enumerates the supported reference frames.
type Kind int

const (
	// ICRS is the International Celestial Reference System; space-fixed,
	// no equinox.
	ICRS Kind = iota

	// FK4 is the fourth fundamental catalogue frame; Besselian equinox,
	// catalog positions include the E-terms of aberration.
	FK4

	// FK4NoE is FK4 with the E-terms already removed.
	FK4NoE

	// FK5 is the fifth fundamental catalogue frame; Julian equinox.
	FK5

	// J2000 is the mean dynamical equator and equinox at J2000.0.
	J2000
)

// String returns the conventional name of the frame.
func (k Kind) String() string {
	switch k {
	case ICRS:
		return "ICRS"
	case FK4:
		return "FK4"
	case FK4NoE:
		return "FK4-NO-E"
	case FK5:
		return "FK5"
	case J2000:
		return "J2000"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind interprets an external frame name. Accepted spellings follow
// the FITS RADESYS values plus the common variants.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ICRS":
		return ICRS, nil
	case "FK4":
		return FK4, nil
	case "FK4-NO-E", "FK4_NO_E", "FK4 NO E-TERMS", "FK4NOE":
		return FK4NoE, nil
	case "FK5":
		return FK5, nil
	case "J2000", "DYNJ2000":
		return J2000, nil
	}
	return ICRS, fmt.Errorf("unknown reference frame %q", s)
}

// Frame is a reference frame together with its equinox and, for the FK4
// family, an optional epoch of observation.
type Frame struct {
	Kind Kind

	// Equinox is a decimal year in the frame's native scale: Besselian
	// for FK4/FK4-NO-E, Julian for the others. Fixed at 2000.0 for ICRS
	// and J2000.
	Equinox float64

	// ObsEpoch is the Besselian epoch of observation, or NaN when absent.
	// Only the FK4 family uses it (fictitious proper-motion correction).
	ObsEpoch float64
}

// New returns a frame with its conventional default equinox: B1950.0 for
// the FK4 family, J2000.0 otherwise. The epoch of observation is absent.
func New(kind Kind) Frame {
	equinox := 2000.0
	if kind == FK4 || kind == FK4NoE {
		equinox = 1950.0
	}
	return Frame{Kind: kind, Equinox: equinox, ObsEpoch: math.NaN()}
}

// NeedsEquinox reports whether the frame is parameterized by an equinox.
func (f Frame) NeedsEquinox() bool {
	return f.Kind == FK4 || f.Kind == FK4NoE || f.Kind == FK5
}

// NeedsObsEpoch reports whether the frame uses an epoch of observation.
func (f Frame) NeedsObsEpoch() bool {
	return f.Kind == FK4 || f.Kind == FK4NoE
}

// HasObsEpoch reports whether an epoch of observation is set.
func (f Frame) HasObsEpoch() bool {
	return !math.IsNaN(f.ObsEpoch)
}

// WithEquinox returns a copy with the equinox set from an epoch
// specification string (see epoch.Parse). The value is stored in the
// frame's native scale. For ICRS and J2000, whose orientation is not
// parameterized by an equinox, this is a no-op.
func (f Frame) WithEquinox(spec string) (Frame, error) {
	if !f.NeedsEquinox() {
		return f, nil
	}
	e, err := epoch.Parse(spec)
	if err != nil {
		return f, err
	}
	if f.Kind == FK4 || f.Kind == FK4NoE {
		f.Equinox = e.Besselian
	} else {
		f.Equinox = e.Julian
	}
	return f, nil
}

// WithObsEpoch returns a copy with the epoch of observation set from an
// epoch specification string. No-op for frames outside the FK4 family.
func (f Frame) WithObsEpoch(spec string) (Frame, error) {
	if !f.NeedsObsEpoch() {
		return f, nil
	}
	e, err := epoch.Parse(spec)
	if err != nil {
		return f, err
	}
	f.ObsEpoch = e.Besselian
	return f, nil
}
