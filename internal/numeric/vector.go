// Package numeric provides the small linear-algebra and safe-trigonometry
// toolkit used by the coordinate transform pipeline.
//
// Angles at package boundaries are in degrees, matching the convention of
// the astrometric literature the transform formulas come from. Rotation
// matrices follow the frame-rotation convention: RotZ(a) rotates the
// coordinate axes by angle a, so for a vector v expressed in the old frame,
// RotZ(a).MulVec(v) yields its components in the rotated frame.
package numeric

import "math"

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180.0

// Rad2Deg converts radians to degrees.
const Rad2Deg = 180.0 / math.Pi

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the scalar product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// FromLonLat converts spherical coordinates (degrees) to a unit Cartesian
// vector. Longitude is measured in the XY plane from +X toward +Y, latitude
// from the XY plane toward +Z.
func FromLonLat(lonDeg, latDeg float64) Vec3 {
	lon := lonDeg * Deg2Rad
	lat := latDeg * Deg2Rad
	cosLat := math.Cos(lat)
	return Vec3{
		X: cosLat * math.Cos(lon),
		Y: cosLat * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// ToLonLat converts a Cartesian vector to spherical coordinates in degrees.
// Longitude is normalized into [0, 360); latitude is in [-90, 90]. At the
// poles, where longitude is undefined, 0 is returned.
func ToLonLat(v Vec3) (lonDeg, latDeg float64) {
	r := v.Norm()
	if r == 0 {
		return 0, 0
	}
	lat := SafeAsin(v.Z / r)
	lon := SafeAtan2(v.Y, v.X, 0)

	lonDeg = lon * Rad2Deg
	if lonDeg < 0 {
		lonDeg += 360.0
	}
	// Guard against 360.0 sneaking back in through rounding.
	if lonDeg >= 360.0 {
		lonDeg -= 360.0
	}
	return lonDeg, lat * Rad2Deg
}
