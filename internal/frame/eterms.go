package frame

import (
	"math"

	"github.com/sky/skygo/internal/numeric"
)

// Eterms computes the elliptic aberration (E-terms) vector for a Besselian
// epoch. FK4 catalog positions include this displacement, which stems from
// the eccentricity of the Earth's orbit; it must be removed before rotating
// an FK4 position into another frame and re-added when the target is FK4.
//
// The polynomials for the orbital eccentricity, the mean obliquity
// (Astrophysical Quantities, 4th ed.) and the mean longitude of perihelion
// are evaluated in Julian centuries since B1950. The magnitude of the
// vector is the constant of aberration (20.49552″) times the eccentricity,
// about 343 mas.
func Eterms(besselianEpoch float64) numeric.Vec3 {
	t := (besselianEpoch - 1950.0) * 1.00002135903 / 100.0

	// Eccentricity of the Earth's orbit.
	ec := 0.01673011 - (0.00004193+0.000000126*t)*t

	// Mean obliquity of the ecliptic, arcsec to radians.
	ob := (84404.836 - (46.8495+(0.00319+0.00181*t)*t)*t) / 3600.0 * numeric.Deg2Rad

	// Mean longitude of perihelion of the solar orbit, arcsec to radians.
	p := (1015489.951 + (6190.67+(1.65+0.012*t)*t)*t) / 3600.0 * numeric.Deg2Rad

	// Constant of aberration times eccentricity, in radians.
	ek := ec * 20.49552 / 3600.0 * numeric.Deg2Rad

	cp := math.Cos(p)
	return numeric.Vec3{
		X: ek * math.Sin(p),
		Y: -ek * cp * math.Cos(ob),
		Z: -ek * cp * math.Sin(ob),
	}
}
