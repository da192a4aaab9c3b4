package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/sky/skygo/internal/crs"
	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/numeric"
)

func allSystems(t *testing.T) []crs.System {
	t.Helper()
	fk4Obs, err := frame.New(frame.FK4).WithObsEpoch("B1983.5")
	if err != nil {
		t.Fatal(err)
	}
	fk5Old, err := frame.New(frame.FK5).WithEquinox("J1975")
	if err != nil {
		t.Fatal(err)
	}
	return []crs.System{
		crs.NewEquatorial(frame.New(frame.ICRS)),
		crs.NewEquatorial(frame.New(frame.FK5)),
		crs.NewEquatorial(fk5Old),
		crs.NewEquatorial(frame.New(frame.FK4)),
		crs.NewEquatorial(fk4Obs),
		crs.NewEquatorial(frame.New(frame.FK4NoE)),
		crs.NewEquatorial(frame.New(frame.J2000)),
		crs.NewEcliptic(frame.New(frame.ICRS)),
		crs.NewEcliptic(frame.New(frame.FK4)),
		crs.NewGalactic(),
		crs.NewSupergalactic(),
	}
}

// TestConvertIdentity: converting a position into its own system returns
// it unchanged for every system kind.
func TestConvertIdentity(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{182.63867, 39.401167},
		{359.9, -89.5},
		{45, 90},
	}

	for _, sys := range allSystems(t) {
		for _, c := range coords {
			pos, err := Convert(sys, sys, c[0], c[1])
			if err != nil {
				t.Fatalf("%s (%g, %g): %v", sys, c[0], c[1], err)
			}
			if math.Abs(pos.Lat-c[1]) > 1e-9 {
				t.Errorf("%s: identity lat %g -> %.12f", sys, c[1], pos.Lat)
			}
			if math.Abs(c[1]) < 90 && math.Abs(pos.Lon-c[0]) > 1e-9 {
				t.Errorf("%s: identity lon %g -> %.12f", sys, c[0], pos.Lon)
			}
		}
	}
}

// TestConvertRoundTrip: A→B→A reproduces the input within 1e-6° for every
// system pair.
func TestConvertRoundTrip(t *testing.T) {
	systems := allSystems(t)
	coords := [][2]float64{
		{182.63867, 39.401167},
		{10.5, -45.25},
		{300.0, 78.0},
	}

	for _, a := range systems {
		for _, b := range systems {
			for _, c := range coords {
				fwd, err := Convert(a, b, c[0], c[1])
				if err != nil {
					t.Fatalf("%s → %s: %v", a, b, err)
				}
				back, err := Convert(b, a, fwd.Lon, fwd.Lat)
				if err != nil {
					t.Fatalf("%s → %s: %v", b, a, err)
				}
				dLon := math.Abs(back.Lon - c[0])
				if dLon > 180 {
					dLon = 360 - dLon
				}
				if dLon > 1e-6 || math.Abs(back.Lat-c[1]) > 1e-6 {
					t.Errorf("%s ↔ %s: (%g, %g) → (%.8f, %.8f)",
						a, b, c[0], c[1], back.Lon, back.Lat)
				}
			}
		}
	}
}

// TestGalacticPoleThroughFK4: the galactic north pole converts to
// equatorial FK4 B1950 (192.25°, 27.4°) within 0.01° (the E-terms shift
// the exact rotation by up to ≈0.35″).
func TestGalacticPoleThroughFK4(t *testing.T) {
	pos, err := Convert(crs.NewGalactic(), crs.NewEquatorial(frame.New(frame.FK4)), 0, 90)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos.Lon-192.25) > 0.01 || math.Abs(pos.Lat-27.4) > 0.01 {
		t.Errorf("galactic pole → FK4 B1950 = (%.6f, %.6f), want (192.25, 27.4)", pos.Lon, pos.Lat)
	}

	back, err := Convert(pos.System, crs.NewGalactic(), pos.Lon, pos.Lat)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.Lat-90) > 1e-6 {
		t.Errorf("round trip back to pole: b = %.9f°, want 90°", back.Lat)
	}
}

// TestICRSToSupergalactic: the conversion is reproducible and consistent
// with its inverse to well below the 1e-4° reference tolerance; it must
// also move the position substantially (the supergalactic plane is far
// from the equator).
func TestICRSToSupergalactic(t *testing.T) {
	src := crs.NewEquatorial(frame.New(frame.ICRS))
	dst := crs.NewSupergalactic()

	pos, err := Convert(src, dst, 182.63867, 39.401167)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos.Lon-182.63867) < 1 && math.Abs(pos.Lat-39.401167) < 1 {
		t.Errorf("ICRS → supergalactic barely moved: (%.5f, %.5f)", pos.Lon, pos.Lat)
	}

	back, err := Convert(dst, src, pos.Lon, pos.Lat)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.Lon-182.63867) > 1e-6 || math.Abs(back.Lat-39.401167) > 1e-6 {
		t.Errorf("round trip = (%.8f, %.8f), want (182.63867, 39.401167)", back.Lon, back.Lat)
	}

	// A second call must reproduce the first bit-for-bit: the pipeline is
	// deterministic.
	again, err := Convert(src, dst, 182.63867, 39.401167)
	if err != nil {
		t.Fatal(err)
	}
	if again.Lon != pos.Lon || again.Lat != pos.Lat {
		t.Error("repeated conversion differs")
	}
}

// TestEtermsInverse: add then remove is the identity for unit vectors.
func TestEtermsInverse(t *testing.T) {
	eterm := frame.Eterms(1950.0)
	vectors := []numeric.Vec3{
		numeric.FromLonLat(0, 0),
		numeric.FromLonLat(182.6, 39.4),
		numeric.FromLonLat(270, -89.9),
		numeric.FromLonLat(45, 90),
	}

	for _, v := range vectors {
		added, err := addEterms(v, eterm)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(added.Norm()-1) > 1e-12 {
			t.Errorf("addEterms result norm = %.15f, want 1", added.Norm())
		}
		got := removeEterms(added, eterm)
		if got.Sub(v).Norm() > 1e-9 {
			t.Errorf("remove(add(v)) differs from v by %.2e", got.Sub(v).Norm())
		}
	}
}

// TestFK4ConversionAppliesEterms: FK4 → FK4-NO-E at the same equinox is
// exactly the E-terms removal, a shift of ≈0.3″.
func TestFK4ConversionAppliesEterms(t *testing.T) {
	fk4 := crs.NewEquatorial(frame.New(frame.FK4))
	noE := crs.NewEquatorial(frame.New(frame.FK4NoE))

	pos, err := Convert(fk4, noE, 100, 30)
	if err != nil {
		t.Fatal(err)
	}
	shiftArcsec := math.Hypot((pos.Lon-100)*math.Cos(30*numeric.Deg2Rad), pos.Lat-30) * 3600
	if shiftArcsec < 0.05 || shiftArcsec > 0.7 {
		t.Errorf("FK4 → FK4-NO-E shift = %.3f″, want within (0.05, 0.7)", shiftArcsec)
	}
}

// TestSeparation covers symmetry, the zero case, and a known arc.
func TestSeparation(t *testing.T) {
	icrs := crs.NewEquatorial(frame.New(frame.ICRS))
	gal := crs.NewGalactic()

	p1 := Position{Lon: 10, Lat: 20, System: icrs}
	p2 := Position{Lon: 30, Lat: -5, System: icrs}

	s12, err := Separation(p1, p2)
	if err != nil {
		t.Fatal(err)
	}
	s21, err := Separation(p2, p1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s12-s21) > 1e-9 {
		t.Errorf("separation asymmetric: %.12f vs %.12f", s12, s21)
	}

	s11, err := Separation(p1, p1)
	if err != nil {
		t.Fatal(err)
	}
	if s11 > 1e-9 {
		t.Errorf("separation(p, p) = %.2e, want 0", s11)
	}

	// Two poles 90° apart, across systems.
	g, err := Convert(icrs, gal, 0, 90)
	if err != nil {
		t.Fatal(err)
	}
	sep, err := Separation(Position{Lon: 0, Lat: 90, System: icrs}, Position{Lon: g.Lon, Lat: g.Lat, System: gal})
	if err != nil {
		t.Fatal(err)
	}
	if sep > 1e-6 {
		t.Errorf("separation of the same point in two systems = %.2e°, want 0", sep)
	}

	// Equator quarter-arc inside one system.
	q, err := Separation(Position{Lon: 0, Lat: 0, System: icrs}, Position{Lon: 90, Lat: 0, System: icrs})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q-90) > 1e-9 {
		t.Errorf("quarter arc = %.9f°, want 90°", q)
	}
}

// TestBoundary: longitude exactly 360 normalizes to 0; polar latitudes
// survive without NaN.
func TestBoundary(t *testing.T) {
	icrs := crs.NewEquatorial(frame.New(frame.ICRS))

	pos, err := Convert(icrs, icrs, 360.0, 45.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos.Lon) > 1e-9 {
		t.Errorf("lon 360 normalized to %.12f, want 0", pos.Lon)
	}

	for _, lat := range []float64{90.0, -90.0} {
		pos, err := Convert(icrs, icrs, 0, lat)
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(pos.Lon) || math.IsNaN(pos.Lat) {
			t.Fatalf("pole produced NaN: %+v", pos)
		}
		if pos.Lat != lat {
			t.Errorf("polar latitude %g -> %.12f", lat, pos.Lat)
		}
	}
}

func TestRangeErrors(t *testing.T) {
	icrs := crs.NewEquatorial(frame.New(frame.ICRS))
	gal := crs.NewGalactic()

	tests := []struct {
		name     string
		lon, lat float64
		coord    string
	}{
		{"longitude low", -0.1, 0, "longitude"},
		{"longitude high", 360.5, 0, "longitude"},
		{"latitude low", 0, -90.1, "latitude"},
		{"latitude high", 0, 91, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(icrs, gal, tt.lon, tt.lat)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("error = %v, want *RangeError", err)
			}
			if rerr.Coord != tt.coord {
				t.Errorf("failing coordinate = %q, want %q", rerr.Coord, tt.coord)
			}
		})
	}
}

func TestConvertBatch(t *testing.T) {
	src := crs.NewEquatorial(frame.New(frame.FK4))
	dst := crs.NewSupergalactic()

	coords := []float64{
		0, 0,
		182.63867, 39.401167,
		359.999, -89.9,
		123.4, 56.7,
	}

	batch, err := ConvertBatch(src, dst, coords)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != len(coords)/2 {
		t.Fatalf("got %d results, want %d", len(batch), len(coords)/2)
	}

	// Batch must agree with point-by-point conversion exactly.
	for i := range batch {
		single, err := Convert(src, dst, coords[2*i], coords[2*i+1])
		if err != nil {
			t.Fatal(err)
		}
		if batch[i].Lon != single.Lon || batch[i].Lat != single.Lat {
			t.Errorf("pair %d: batch (%.12f, %.12f) != single (%.12f, %.12f)",
				i, batch[i].Lon, batch[i].Lat, single.Lon, single.Lat)
		}
	}

	if _, err := ConvertBatch(src, dst, []float64{1, 2, 3}); err == nil {
		t.Error("odd-length coords should be rejected")
	}
	if _, err := ConvertBatch(src, dst, []float64{0, 0, 999, 0}); err == nil {
		t.Error("out-of-range pair should be rejected")
	}
}
