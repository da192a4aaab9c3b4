package crs

import (
	"fmt"
	"math"

	"github.com/sky/skygo/internal/epoch"
	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/numeric"
	"github.com/sky/skygo/internal/precess"
)

// UnsupportedTargetError reports a coordinate-system pair with no
// composition rule.
type UnsupportedTargetError struct {
	From, To Kind
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("no rotation rule from %s to %s coordinates", e.From, e.To)
}

// obliquity1980 returns the IAU 1980 mean obliquity of the ecliptic in
// degrees at a Julian Date.
func obliquity1980(jd float64) float64 {
	t := (jd - epoch.JDJ2000) / 36525.0
	return (84381.448 + (-46.8150+(-0.00059+0.001813*t)*t)*t) / 3600.0
}

// obliquity2000 returns the IAU 2000 mean obliquity of the ecliptic in
// degrees at a Julian Date.
func obliquity2000(jd float64) float64 {
	t := (jd - epoch.JDJ2000) / 36525.0
	return (84381.406 + (-46.836769+(-0.0001831+(0.00200340+(-0.000000576-0.0000000434*t)*t)*t)*t)*t) / 3600.0
}

// eqToEcl returns the rotation from mean equatorial to mean ecliptic
// coordinates for a frame at its equinox: an X-axis rotation by the mean
// obliquity. The obliquity model and the year scale of the equinox both
// follow the frame family.
func eqToEcl(f frame.Frame) numeric.Mat3 {
	var jd float64
	if f.Kind == frame.FK4 || f.Kind == frame.FK4NoE {
		jd = epoch.BesselianToJD(f.Equinox)
	} else {
		jd = epoch.JulianToJD(f.Equinox)
	}

	var eps float64
	if f.Kind == frame.ICRS || f.Kind == frame.J2000 {
		eps = obliquity2000(jd)
	} else {
		eps = obliquity1980(jd)
	}
	return numeric.RotX(eps)
}

// eqB1950ToGal returns the fixed rotation from equatorial FK4 B1950 to
// galactic coordinates, from the IAU 1958 defining Euler angles: galactic
// pole at (192.25°, +27.4°), node position angle 123°.
func eqB1950ToGal() numeric.Mat3 {
	return numeric.RotZ(180 - 123.0).Mul(numeric.RotY(90 - 27.4)).Mul(numeric.RotZ(192.25))
}

// galToSgal returns the fixed rotation from galactic to supergalactic
// coordinates: supergalactic pole at galactic (47.37°, +6.32°).
func galToSgal() numeric.Mat3 {
	return numeric.RotZ(90.0).Mul(numeric.RotY(90 - 6.32)).Mul(numeric.RotZ(47.37))
}

// b1950FK4 is the fixed equatorial waypoint for galactic and supergalactic
// chains.
var b1950FK4 = frame.New(frame.FK4)

// pickObs selects the Besselian epoch of observation for an FK4 leg: the
// side of the transition that is actually FK4 supplies it.
func pickObs(src, dst frame.Frame) float64 {
	if src.NeedsObsEpoch() && src.HasObsEpoch() {
		return src.ObsEpoch
	}
	if dst.NeedsObsEpoch() && dst.HasObsEpoch() {
		return dst.ObsEpoch
	}
	return math.NaN()
}

// RotationTo composes the rotation matrix that maps Cartesian positions
// expressed in s to the target system t: xyz_t = M · xyz_s. The matrix
// depends only on the two systems, so it can be computed once and shared
// across any number of positions.
func (s System) RotationTo(t System) (numeric.Mat3, error) {
	switch s.Kind {
	case Equatorial:
		return eqRotationTo(s.Frame, t)

	case Ecliptic:
		// Back to equatorial at our own equinox and frame, then the
		// equatorial chain.
		m0 := eqToEcl(s.Frame).Transpose()
		m, err := eqRotationTo(s.Frame, t)
		if err != nil {
			return numeric.Mat3{}, err
		}
		return m.Mul(m0), nil

	case Galactic:
		return galRotationTo(t)

	case Supergalactic:
		m, err := galRotationTo(t)
		if err != nil {
			return numeric.Mat3{}, err
		}
		return m.Mul(galToSgal().Transpose()), nil
	}

	return numeric.Mat3{}, &UnsupportedTargetError{From: s.Kind, To: t.Kind}
}

// eqRotationTo is the equatorial-source chain: f is the equatorial frame
// the position is currently expressed in.
func eqRotationTo(f frame.Frame, t System) (numeric.Mat3, error) {
	switch t.Kind {
	case Equatorial:
		return precess.FrameMatrix(f.Kind, f.Equinox, t.Frame.Kind, t.Frame.Equinox, pickObs(f, t.Frame))

	case Ecliptic:
		m1, err := precess.FrameMatrix(f.Kind, f.Equinox, t.Frame.Kind, t.Frame.Equinox, pickObs(f, t.Frame))
		if err != nil {
			return numeric.Mat3{}, err
		}
		return eqToEcl(t.Frame).Mul(m1), nil

	case Galactic, Supergalactic:
		// Precess to the fixed FK4 B1950 waypoint, then apply the fixed
		// galactic rotation.
		m1, err := precess.FrameMatrix(f.Kind, f.Equinox, frame.FK4, 1950.0, pickObs(f, b1950FK4))
		if err != nil {
			return numeric.Mat3{}, err
		}
		m := eqB1950ToGal().Mul(m1)
		if t.Kind == Supergalactic {
			m = galToSgal().Mul(m)
		}
		return m, nil
	}

	return numeric.Mat3{}, &UnsupportedTargetError{From: Equatorial, To: t.Kind}
}

// galRotationTo is the galactic-source chain.
func galRotationTo(t System) (numeric.Mat3, error) {
	switch t.Kind {
	case Galactic:
		return numeric.Identity(), nil

	case Supergalactic:
		return galToSgal(), nil

	case Equatorial:
		m1 := eqB1950ToGal().Transpose()
		m2, err := precess.FrameMatrix(frame.FK4, 1950.0, t.Frame.Kind, t.Frame.Equinox, pickObs(b1950FK4, t.Frame))
		if err != nil {
			return numeric.Mat3{}, err
		}
		return m2.Mul(m1), nil

	case Ecliptic:
		// Through equatorial in the target's own frame and equinox, then
		// the obliquity rotation at that same equinox.
		m1 := eqB1950ToGal().Transpose()
		m2, err := precess.FrameMatrix(frame.FK4, 1950.0, t.Frame.Kind, t.Frame.Equinox, pickObs(b1950FK4, t.Frame))
		if err != nil {
			return numeric.Mat3{}, err
		}
		return eqToEcl(t.Frame).Mul(m2).Mul(m1), nil
	}

	return numeric.Mat3{}, &UnsupportedTargetError{From: Galactic, To: t.Kind}
}
