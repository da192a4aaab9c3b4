package precess

import (
	"fmt"

	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/numeric"
)

// UnsupportedTransitionError reports a frame pair for which no composition
// rule is defined.
type UnsupportedTransitionError struct {
	From, To frame.Kind
}

func (e *UnsupportedTransitionError) Error() string {
	return fmt.Sprintf("no transformation rule from %s to %s", e.From, e.To)
}

// FrameMatrix produces the rotation matrix M such that a Cartesian
// position in the source frame at its equinox maps to the target frame at
// its equinox: xyz_target = M · xyz_source.
//
// Equinoxes e1 and e2 are decimal years in each frame's native scale
// (Besselian for the FK4 family, Julian otherwise). obsEpoch is the
// Besselian epoch of observation for the FK4 proper-motion correction, or
// NaN when absent. FK4 and FK4-NO-E are identical here; they differ only
// in the E-terms handling, which is the orchestrator's concern.
//
// Every transition is composed from at most four primitives: the Newcomb
// precession P_B, the Lieske precession P_J, the IAU 2006 precession P_06,
// and the fixed biases FK4↔FK5, ICRS↔FK5 and ICRS↔J2000. Transitions into
// or out of the FK4 family always pass through B1950; transitions touching
// ICRS or the dynamical J2000 frame pass through J2000.
func FrameMatrix(from frame.Kind, e1 float64, to frame.Kind, e2 float64, obsEpoch float64) (numeric.Mat3, error) {
	switch from {
	case frame.ICRS:
		switch to {
		case frame.ICRS:
			return numeric.Identity(), nil
		case frame.FK5:
			return JulianMatrix(2000.0, e2).Mul(ICRSToFK5()), nil
		case frame.FK4, frame.FK4NoE:
			return BesselianMatrix(1950.0, e2).Mul(FK5ToFK4(obsEpoch)).Mul(ICRSToFK5()), nil
		case frame.J2000:
			return IAU2006Matrix(2000.0, e2).Mul(ICRSToJ2000()), nil
		}

	case frame.FK5:
		switch to {
		case frame.ICRS:
			return ICRSToFK5().Transpose().Mul(JulianMatrix(e1, 2000.0)), nil
		case frame.FK5:
			return JulianMatrix(e1, e2), nil
		case frame.FK4, frame.FK4NoE:
			return BesselianMatrix(1950.0, e2).Mul(FK5ToFK4(obsEpoch)).Mul(JulianMatrix(e1, 2000.0)), nil
		case frame.J2000:
			return IAU2006Matrix(2000.0, e2).Mul(ICRSToJ2000()).
				Mul(ICRSToFK5().Transpose()).Mul(JulianMatrix(e1, 2000.0)), nil
		}

	case frame.FK4, frame.FK4NoE:
		switch to {
		case frame.ICRS:
			return ICRSToFK5().Transpose().Mul(FK4ToFK5(obsEpoch)).Mul(BesselianMatrix(e1, 1950.0)), nil
		case frame.FK5:
			return JulianMatrix(2000.0, e2).Mul(FK4ToFK5(obsEpoch)).Mul(BesselianMatrix(e1, 1950.0)), nil
		case frame.FK4, frame.FK4NoE:
			return BesselianMatrix(e1, e2), nil
		case frame.J2000:
			return IAU2006Matrix(2000.0, e2).Mul(ICRSToJ2000()).Mul(ICRSToFK5().Transpose()).
				Mul(FK4ToFK5(obsEpoch)).Mul(BesselianMatrix(e1, 1950.0)), nil
		}

	case frame.J2000:
		switch to {
		case frame.ICRS:
			return ICRSToJ2000().Transpose().Mul(IAU2006Matrix(e1, 2000.0)), nil
		case frame.FK5:
			return JulianMatrix(2000.0, e2).Mul(ICRSToFK5()).
				Mul(ICRSToJ2000().Transpose()).Mul(IAU2006Matrix(e1, 2000.0)), nil
		case frame.FK4, frame.FK4NoE:
			return BesselianMatrix(1950.0, e2).Mul(FK5ToFK4(obsEpoch)).Mul(ICRSToFK5()).
				Mul(ICRSToJ2000().Transpose()).Mul(IAU2006Matrix(e1, 2000.0)), nil
		case frame.J2000:
			return IAU2006Matrix(e1, e2), nil
		}
	}

	return numeric.Mat3{}, &UnsupportedTransitionError{From: from, To: to}
}
