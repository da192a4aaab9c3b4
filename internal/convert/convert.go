// Package convert orchestrates coordinate conversions: it validates
// inputs, moves positions between spherical and Cartesian form, applies
// the E-terms correction around the frame rotation, and packages results.
//
// The Pipeline type precomputes the rotation matrix and E-terms vectors
// for a system pair once; they depend only on the pair, not on the
// individual coordinates, so a single Pipeline serves any number of
// points (see ConvertBatch).
package convert

import (
	"fmt"

	"github.com/sky/skygo/internal/crs"
	"github.com/sky/skygo/internal/numeric"
)

// Position is a sky position expressed in a coordinate reference system.
// Longitude is in [0, 360), latitude in [-90, 90], both degrees.
type Position struct {
	Lon, Lat float64
	System   crs.System
}

// RangeError reports a coordinate outside its valid domain.
type RangeError struct {
	Coord    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g outside [%g, %g]", e.Coord, e.Value, e.Min, e.Max)
}

// validate range-checks a coordinate pair. Longitude 360 is accepted (it
// normalizes to 0 on output) and both bounds are widened by the numeric
// tolerance so epsilon-level drift at the domain edges does not reject
// valid positions.
func validate(lon, lat float64) error {
	if !numeric.InInterval(lon, 0, 360, numeric.Tolerance) {
		return &RangeError{Coord: "longitude", Value: lon, Min: 0, Max: 360}
	}
	if !numeric.InInterval(lat, -90, 90, numeric.Tolerance) {
		return &RangeError{Coord: "latitude", Value: lat, Min: -90, Max: 90}
	}
	return nil
}

// Pipeline is a precomputed conversion between two coordinate reference
// systems. It is immutable after construction and safe for concurrent
// use.
type Pipeline struct {
	Source, Target crs.System

	rot              numeric.Mat3
	etIn, etOut      numeric.Vec3
	hasEtIn, hasEtOut bool
}

// NewPipeline builds the conversion pipeline for a system pair: one
// rotation matrix plus the E-terms vectors for whichever side resolves to
// FK4.
func NewPipeline(source, target crs.System) (*Pipeline, error) {
	rot, err := source.RotationTo(target)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{Source: source, Target: target, rot: rot}
	p.etIn, p.hasEtIn = source.Eterms()
	p.etOut, p.hasEtOut = target.Eterms()
	return p, nil
}

// Apply converts a single coordinate pair through the pipeline.
func (p *Pipeline) Apply(lon, lat float64) (Position, error) {
	if err := validate(lon, lat); err != nil {
		return Position{}, err
	}

	xyz := numeric.FromLonLat(lon, lat)

	if p.hasEtIn {
		xyz = removeEterms(xyz, p.etIn)
	}

	xyz = p.rot.MulVec(xyz)

	if p.hasEtOut {
		var err error
		xyz, err = addEterms(xyz, p.etOut)
		if err != nil {
			return Position{}, err
		}
	}

	outLon, outLat := numeric.ToLonLat(xyz)
	return Position{Lon: outLon, Lat: outLat, System: p.Target}, nil
}

// Convert transforms a single position from the source to the target
// coordinate reference system.
func Convert(source, target crs.System, lon, lat float64) (Position, error) {
	p, err := NewPipeline(source, target)
	if err != nil {
		return Position{}, err
	}
	return p.Apply(lon, lat)
}

// ConvertBatch transforms a flat array of (lon, lat) pairs. The rotation
// matrix and E-terms vectors are computed once and reused for every pair,
// so the cost is one matrix build plus one matrix-vector product per
// point.
func ConvertBatch(source, target crs.System, coords []float64) ([]Position, error) {
	if len(coords)%2 != 0 {
		return nil, &RangeError{Coord: "coords length", Value: float64(len(coords)), Min: 0, Max: 0}
	}

	p, err := NewPipeline(source, target)
	if err != nil {
		return nil, err
	}

	out := make([]Position, len(coords)/2)
	for i := range out {
		pos, err := p.Apply(coords[2*i], coords[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out[i] = pos
	}
	return out, nil
}

// Separation returns the angular distance between two positions in
// degrees. The first position is rotated into the second's system before
// taking the arc.
func Separation(p1, p2 Position) (float64, error) {
	moved, err := Convert(p1.System, p2.System, p1.Lon, p1.Lat)
	if err != nil {
		return 0, err
	}

	v1 := numeric.FromLonLat(moved.Lon, moved.Lat)
	v2 := numeric.FromLonLat(p2.Lon, p2.Lat)
	return numeric.SafeAcos(v1.Dot(v2)) * numeric.Rad2Deg, nil
}
