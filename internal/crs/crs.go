// Package crs models Coordinate Reference Systems — a coordinate system
// (equatorial, ecliptic, galactic, supergalactic) plus, where applicable, a
// reference frame with equinox and epoch of observation — and composes the
// rotation matrix between any two of them.
package crs

import (
	"fmt"
	"strings"

	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/numeric"
)

// Kind enumerates the supported coordinate systems.
type Kind int

const (
	// Equatorial coordinates (right ascension, declination).
	Equatorial Kind = iota

	// Ecliptic coordinates referred to the mean equinox and ecliptic of
	// a reference frame.
	Ecliptic

	// Galactic coordinates (IAU 1958 definition).
	Galactic

	// Supergalactic coordinates (de Vaucouleurs).
	Supergalactic
)

// String returns the conventional name of the coordinate system.
func (k Kind) String() string {
	switch k {
	case Equatorial:
		return "equatorial"
	case Ecliptic:
		return "ecliptic"
	case Galactic:
		return "galactic"
	case Supergalactic:
		return "supergalactic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind interprets an external coordinate-system name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equatorial", "eq":
		return Equatorial, nil
	case "ecliptic", "ecl":
		return Ecliptic, nil
	case "galactic", "gal":
		return Galactic, nil
	case "supergalactic", "sgal", "sgl":
		return Supergalactic, nil
	}
	return Equatorial, fmt.Errorf("unknown coordinate system %q", s)
}

// HasFrame reports whether systems of this kind carry a reference frame.
// Galactic and supergalactic coordinates are frame-less; their orientation
// constants are fixed internally.
func (k Kind) HasFrame() bool {
	return k == Equatorial || k == Ecliptic
}

// System is a coordinate reference system. Construct with the New*
// functions and treat as immutable; Systems may then be shared across
// concurrent conversions.
type System struct {
	Kind  Kind
	Frame frame.Frame // meaningful only when Kind.HasFrame()
}

// NewEquatorial returns an equatorial system in the given reference frame.
func NewEquatorial(f frame.Frame) System {
	return System{Kind: Equatorial, Frame: f}
}

// NewEcliptic returns an ecliptic system in the given reference frame.
// Ecliptic coordinates are not defined for FK4-NO-E in the FITS WCS
// convention; that frame is silently treated as FK4 here, per Calabretta &
// Greisen paper II. This coercion is deliberate and must be preserved.
func NewEcliptic(f frame.Frame) System {
	if f.Kind == frame.FK4NoE {
		f.Kind = frame.FK4
	}
	return System{Kind: Ecliptic, Frame: f}
}

// NewGalactic returns the galactic system.
func NewGalactic() System {
	return System{Kind: Galactic, Frame: frame.New(frame.ICRS)}
}

// NewSupergalactic returns the supergalactic system.
func NewSupergalactic() System {
	return System{Kind: Supergalactic, Frame: frame.New(frame.ICRS)}
}

// String renders the system for logs and error messages.
func (s System) String() string {
	if s.Kind.HasFrame() {
		return fmt.Sprintf("%s(%s %.6g)", s.Kind, s.Frame.Kind, s.Frame.Equinox)
	}
	return s.Kind.String()
}

// Eterms returns the elliptic-aberration vector for positions expressed in
// this system and whether one applies. Only systems whose frame resolves
// to FK4 proper carry E-terms; FK4-NO-E has them removed already, and the
// galactic and supergalactic systems never have them.
func (s System) Eterms() (numeric.Vec3, bool) {
	if s.Kind.HasFrame() && s.Frame.Kind == frame.FK4 {
		return frame.Eterms(s.Frame.Equinox), true
	}
	return numeric.Vec3{}, false
}
