// Package precess builds the rotation matrices that relate celestial
// reference frames at different equinoxes: the three precession models
// (Newcomb for the Besselian/FK4 family, Lieske IAU 1976 for FK5, and the
// IAU 2006 model for the dynamical J2000 frame) and the fixed bias
// matrices between frame families (FK4↔FK5, ICRS↔FK5, ICRS↔J2000).
//
// All angle polynomials produce degrees. A precession with angles ζ, z, θ
// is assembled as RotZ(-z)·RotY(θ)·RotZ(-ζ), the classic equatorial
// precession rotation.
package precess

import (
	"github.com/sky/skygo/internal/epoch"
	"github.com/sky/skygo/internal/numeric"
)

// precessionMatrix assembles the rotation for precession angles in degrees.
func precessionMatrix(zeta, z, theta float64) numeric.Mat3 {
	return numeric.RotZ(-z).Mul(numeric.RotY(theta)).Mul(numeric.RotZ(-zeta))
}

// LieskeAngles returns the IAU 1976 precession angles ζ, z, θ (degrees)
// between two Julian Dates, per Lieske et al. (1977). The time arguments
// are Julian centuries from J2000 to jd1 and from jd1 to jd2.
func LieskeAngles(jd1, jd2 float64) (zeta, z, theta float64) {
	bigT := (jd1 - epoch.JDJ2000) / 36525.0
	t := (jd2 - jd1) / 36525.0

	w := 2306.2181 + (1.39656-0.000139*bigT)*bigT
	zeta = (w + ((0.30188 - 0.000344*bigT) + 0.017998*t)*t) * t
	z = (w + ((1.09468 + 0.000066*bigT) + 0.018203*t)*t) * t
	theta = (2004.3109 + (-0.85330-0.000217*bigT)*bigT +
		((-0.42665-0.000217*bigT)-0.041833*t)*t) * t

	return zeta / 3600.0, z / 3600.0, theta / 3600.0
}

// JulianMatrix returns the precession matrix between two Julian epochs
// (decimal years) in the FK5 system.
func JulianMatrix(e1, e2 float64) numeric.Mat3 {
	jd1 := epoch.JulianToJD(e1)
	jd2 := epoch.JulianToJD(e2)
	return precessionMatrix(LieskeAngles(jd1, jd2))
}

// NewcombAngles returns the Newcomb precession angles ζ, z, θ (degrees)
// between two Besselian epochs, with the Woolard & Clemence polynomial
// coefficients in units of 1000 tropical years referenced to 1850.0.
func NewcombAngles(e1, e2 float64) (zeta, z, theta float64) {
	t1 := (e1 - 1850.0) / 1000.0
	tau := (e2 - 1850.0) / 1000.0 - t1

	a0 := 23035.545 + t1*(139.720+0.060*t1)
	a1 := 30.240 - 0.27*t1
	zeta = tau * (a0 + tau*(a1+tau*17.995))

	b0 := a0
	b1 := 109.480 + 0.39*t1
	z = tau * (b0 + tau*(b1+tau*18.325))

	c0 := 20051.12 + t1*(-85.29-0.37*t1)
	c1 := -42.65 - 0.37*t1
	theta = tau * (c0 + tau*(c1-tau*41.80))

	return zeta / 3600.0, z / 3600.0, theta / 3600.0
}

// BesselianMatrix returns the precession matrix between two Besselian
// epochs (decimal years) in the FK4 system.
func BesselianMatrix(e1, e2 float64) numeric.Mat3 {
	return precessionMatrix(NewcombAngles(e1, e2))
}

// IAU2006Angles returns the IAU 2006 precession angles ζ, z, θ (degrees)
// for a Julian epoch, as polynomials in Julian centuries from 2000.0.
func IAU2006Angles(julianEpoch float64) (zeta, z, theta float64) {
	t := (julianEpoch - 2000.0) / 100.0

	zeta = 2.5976176 + t*(2306.0809506+t*(0.3019015+t*(0.0179663+t*(-0.0000327-t*0.0000002))))
	z = -2.5976176 + t*(2306.0803226+t*(1.0947790+t*(0.0182273+t*(0.0000470-t*0.0000003))))
	theta = t * (2004.1917476 + t*(-0.4269353+t*(-0.0418251+t*(-0.0000601-t*0.0000001))))

	return zeta / 3600.0, z / 3600.0, theta / 3600.0
}

// IAU2006Matrix returns the precession matrix between two Julian epochs in
// the dynamical J2000 system. Epochs away from 2000.0 are handled by
// composing through J2000: the inverse precession from e1 to J2000
// followed by the precession from J2000 to e2.
func IAU2006Matrix(e1, e2 float64) numeric.Mat3 {
	switch {
	case e1 == e2:
		return numeric.Identity()
	case e1 == 2000.0:
		return precessionMatrix(IAU2006Angles(e2))
	case e2 == 2000.0:
		return precessionMatrix(IAU2006Angles(e1)).Transpose()
	default:
		m1 := precessionMatrix(IAU2006Angles(e1)).Transpose()
		m2 := precessionMatrix(IAU2006Angles(e2))
		return m2.Mul(m1)
	}
}
