package convert

import (
	"fmt"
	"math"

	"github.com/sky/skygo/internal/numeric"
)

// MathError reports a computation with no valid solution.
type MathError struct {
	Op string
}

func (e *MathError) Error() string {
	return fmt.Sprintf("no valid solution in %s", e.Op)
}

// removeEterms converts an FK4 apparent place to a mean place by
// subtracting the elliptic-aberration vector. Applied to the source
// Cartesian position before the frame rotation.
func removeEterms(xyz, eterm numeric.Vec3) numeric.Vec3 {
	return xyz.Sub(eterm)
}

// addEterms converts a mean place back to an FK4 apparent place. The
// apparent vector is λ·v̂ + A with λ > 0 chosen so the result is again a
// unit vector: λ² + 2(v̂·A)λ + (|A|²−1) = 0, positive root. Applied to the
// target Cartesian position after the frame rotation.
func addEterms(xyz, eterm numeric.Vec3) (numeric.Vec3, error) {
	unit := xyz.Normalized()

	w := 2.0 * unit.Dot(eterm)
	p := eterm.Dot(eterm) - 1.0

	disc := w*w - 4.0*p
	if disc < 0 {
		return numeric.Vec3{}, &MathError{Op: "E-terms quadratic"}
	}

	lambda := (-w + math.Sqrt(disc)) / 2.0
	return unit.Scale(lambda).Add(eterm), nil
}
