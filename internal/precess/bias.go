package precess

import (
	"math"

	"github.com/sky/skygo/internal/epoch"
	"github.com/sky/skygo/internal/numeric"
)

// masToDeg converts milliarcseconds to degrees.
const masToDeg = 1.0 / (3600.0 * 1000.0)

// FK4ToFK5 returns the FK4 (B1950) → FK5 (J2000) bias matrix of Murray
// (1989, A&A 218, 325). When a Besselian epoch of observation is supplied
// (not NaN), the matrix entries receive small linear corrections
// proportional to the time since B1950, modelling the fictitious proper
// motion of the FK4 frame.
func FK4ToFK5(obsEpoch float64) numeric.Mat3 {
	m := numeric.Mat3{
		{0.9999256794956877, -0.0111814832204662, -0.0048590038153592},
		{0.0111814832391717, 0.9999374848933135, -0.0000271625947142},
		{0.0048590037723143, -0.0000271702937440, 0.9999881946023742},
	}

	if !math.IsNaN(obsEpoch) {
		// Julian centuries since B1950; corrections are in units of 1e-6.
		t := (epoch.BesselianToJD(obsEpoch) - epoch.JDB1950) / 36525.0 / 1e6
		corr := numeric.Mat3{
			{-0.0026455262 * t, -1.1539918689 * t, 2.1111346190 * t},
			{1.1540628161 * t, -0.0129042997 * t, 0.0236021478 * t},
			{-2.1112979048 * t, -0.0056024448 * t, 0.0102587734 * t},
		}
		m = m.Add(corr)
	}

	return m
}

// FK5ToFK4 returns the inverse of FK4ToFK5 for the same epoch of
// observation. With proper-motion corrections applied the matrix is not
// exactly orthogonal, so a true inverse is used rather than the transpose.
func FK5ToFK4(obsEpoch float64) numeric.Mat3 {
	return FK4ToFK5(obsEpoch).Inverse()
}

// ICRSToFK5 returns the fixed rotation from ICRS to the FK5 (J2000) frame,
// built from the frame-bias angles η₀ = −19.9 mas, ξ₀ = +9.1 mas,
// Δα₀ = −22.9 mas.
func ICRSToFK5() numeric.Mat3 {
	eta0 := -19.9 * masToDeg
	xi0 := 9.1 * masToDeg
	da0 := -22.9 * masToDeg
	return numeric.RotX(-eta0).Mul(numeric.RotY(xi0)).Mul(numeric.RotZ(da0))
}

// ICRSToJ2000 returns the fixed rotation from ICRS to the mean dynamical
// J2000 frame, from the bias angles η₀ = −6.8192 mas, ξ₀ = −16.617 mas,
// Δα₀ = −14.6 mas.
func ICRSToJ2000() numeric.Mat3 {
	eta0 := -6.8192 * masToDeg
	xi0 := -16.617 * masToDeg
	da0 := -14.6 * masToDeg
	return numeric.RotX(-eta0).Mul(numeric.RotY(xi0)).Mul(numeric.RotZ(da0))
}
