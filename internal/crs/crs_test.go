package crs

import (
	"math"
	"testing"

	"github.com/sky/skygo/internal/epoch"
	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/numeric"
)

func fk4B1950() System {
	return NewEquatorial(frame.New(frame.FK4))
}

func icrs() System {
	return NewEquatorial(frame.New(frame.ICRS))
}

// TestGalacticPoleFixedPoint: the galactic north pole maps to the defining
// equatorial FK4 B1950 position (192.25°, +27.4°). Exact by construction
// of the Euler angles.
func TestGalacticPoleFixedPoint(t *testing.T) {
	m, err := NewGalactic().RotationTo(fk4B1950())
	if err != nil {
		t.Fatal(err)
	}
	lon, lat := numeric.ToLonLat(m.MulVec(numeric.FromLonLat(0, 90)))
	if math.Abs(lon-192.25) > 1e-9 {
		t.Errorf("pole RA = %.9f°, want 192.25°", lon)
	}
	if math.Abs(lat-27.4) > 1e-9 {
		t.Errorf("pole Dec = %.9f°, want 27.4°", lat)
	}

	// And the inverse: (192.25, 27.4) is the galactic pole.
	m, err = fk4B1950().RotationTo(NewGalactic())
	if err != nil {
		t.Fatal(err)
	}
	_, lat = numeric.ToLonLat(m.MulVec(numeric.FromLonLat(192.25, 27.4)))
	if math.Abs(lat-90) > 1e-9 {
		t.Errorf("galactic latitude of the pole = %.9f°, want 90°", lat)
	}
}

// TestGalacticCentre: the direction l=0, b=0 lies at the classical
// equatorial B1950 position RA ≈ 265.611°, Dec ≈ −28.917°.
func TestGalacticCentre(t *testing.T) {
	m, err := NewGalactic().RotationTo(fk4B1950())
	if err != nil {
		t.Fatal(err)
	}
	lon, lat := numeric.ToLonLat(m.MulVec(numeric.FromLonLat(0, 0)))
	if math.Abs(lon-265.6108) > 0.005 {
		t.Errorf("galactic centre RA = %.4f°, want ≈265.611°", lon)
	}
	if math.Abs(lat-(-28.9167)) > 0.005 {
		t.Errorf("galactic centre Dec = %.4f°, want ≈−28.917°", lat)
	}
}

// TestSupergalacticPoleFixedPoint: the supergalactic north pole lies at
// galactic (47.37°, +6.32°) by construction.
func TestSupergalacticPoleFixedPoint(t *testing.T) {
	m, err := NewSupergalactic().RotationTo(NewGalactic())
	if err != nil {
		t.Fatal(err)
	}
	lon, lat := numeric.ToLonLat(m.MulVec(numeric.FromLonLat(0, 90)))
	if math.Abs(lon-47.37) > 1e-9 {
		t.Errorf("SG pole l = %.9f°, want 47.37°", lon)
	}
	if math.Abs(lat-6.32) > 1e-9 {
		t.Errorf("SG pole b = %.9f°, want 6.32°", lat)
	}
}

// TestObliquityValues pins the two mean-obliquity models at J2000:
// 23.439291° (IAU 1980) and 23.439279° (IAU 2000).
func TestObliquityValues(t *testing.T) {
	if got := obliquity1980(epoch.JDJ2000); math.Abs(got-23.4392911) > 1e-6 {
		t.Errorf("obliquity1980(J2000) = %.7f°, want 23.4392911°", got)
	}
	if got := obliquity2000(epoch.JDJ2000); math.Abs(got-23.4392794) > 1e-6 {
		t.Errorf("obliquity2000(J2000) = %.7f°, want 23.4392794°", got)
	}
	// Obliquity decreases by ≈47″ per century.
	d := obliquity1980(epoch.JulianToJD(2100)) - obliquity1980(epoch.JDJ2000)
	if math.Abs(d*3600+46.8) > 0.1 {
		t.Errorf("obliquity change over a century = %.2f″, want ≈−46.8″", d*3600)
	}
}

// TestRotationRoundTrips exercises system pairs across all four kinds and
// several frames; forward and backward rotations must compose to the
// identity.
func TestRotationRoundTrips(t *testing.T) {
	fk4Obs, err := frame.New(frame.FK4).WithObsEpoch("B1983.5")
	if err != nil {
		t.Fatal(err)
	}
	fk5At2025, err := frame.New(frame.FK5).WithEquinox("J2025")
	if err != nil {
		t.Fatal(err)
	}

	systems := []System{
		icrs(),
		NewEquatorial(frame.New(frame.FK5)),
		NewEquatorial(fk5At2025),
		fk4B1950(),
		NewEquatorial(fk4Obs),
		NewEquatorial(frame.New(frame.FK4NoE)),
		NewEquatorial(frame.New(frame.J2000)),
		NewEcliptic(frame.New(frame.ICRS)),
		NewEcliptic(frame.New(frame.FK5)),
		NewEcliptic(frame.New(frame.FK4)),
		NewGalactic(),
		NewSupergalactic(),
	}

	for _, a := range systems {
		for _, b := range systems {
			fwd, err := a.RotationTo(b)
			if err != nil {
				t.Fatalf("%s → %s: %v", a, b, err)
			}
			back, err := b.RotationTo(a)
			if err != nil {
				t.Fatalf("%s → %s: %v", b, a, err)
			}
			m := back.Mul(fwd)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1.0
					}
					if math.Abs(m[i][j]-want) > 1e-9 {
						t.Errorf("%s ↔ %s: (back·fwd)[%d][%d] = %.12f, want %g", a, b, i, j, m[i][j], want)
					}
				}
			}
		}
	}
}

// TestEclipticObliquityEffect: the ecliptic pole sits 23.44° from the
// celestial pole.
func TestEclipticObliquityEffect(t *testing.T) {
	eq := NewEquatorial(frame.New(frame.FK5))
	ecl := NewEcliptic(frame.New(frame.FK5))
	m, err := eq.RotationTo(ecl)
	if err != nil {
		t.Fatal(err)
	}
	_, lat := numeric.ToLonLat(m.MulVec(numeric.FromLonLat(0, 90)))
	if math.Abs(lat-(90-23.4392911)) > 1e-6 {
		t.Errorf("ecliptic latitude of the celestial pole = %.6f°, want %.6f°", lat, 90-23.4392911)
	}
}

// TestFK4NoEEclipticCoercion: FK4-NO-E with ecliptic coordinates is
// silently treated as FK4, per the FITS WCS paper convention.
func TestFK4NoEEclipticCoercion(t *testing.T) {
	s := NewEcliptic(frame.New(frame.FK4NoE))
	if s.Frame.Kind != frame.FK4 {
		t.Errorf("ecliptic FK4-NO-E frame = %s, want coerced FK4", s.Frame.Kind)
	}
	if _, ok := s.Eterms(); !ok {
		t.Error("coerced ecliptic FK4 system should carry E-terms")
	}
}

func TestEtermsLookup(t *testing.T) {
	tests := []struct {
		name string
		sys  System
		want bool
	}{
		{"equatorial FK4", fk4B1950(), true},
		{"ecliptic FK4", NewEcliptic(frame.New(frame.FK4)), true},
		{"equatorial FK4-NO-E", NewEquatorial(frame.New(frame.FK4NoE)), false},
		{"equatorial ICRS", icrs(), false},
		{"equatorial FK5", NewEquatorial(frame.New(frame.FK5)), false},
		{"galactic", NewGalactic(), false},
		{"supergalactic", NewSupergalactic(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.sys.Eterms()
			if ok != tt.want {
				t.Errorf("Eterms present = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestUnsupportedTarget(t *testing.T) {
	bad := System{Kind: Kind(99)}
	if _, err := icrs().RotationTo(bad); err == nil {
		t.Error("expected error for unknown target kind")
	}
	if _, err := bad.RotationTo(icrs()); err == nil {
		t.Error("expected error for unknown source kind")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"equatorial", Equatorial},
		{"EQ", Equatorial},
		{"ecliptic", Ecliptic},
		{"gal", Galactic},
		{"supergalactic", Supergalactic},
		{"SGAL", Supergalactic},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseKind("helioprojective"); err == nil {
		t.Error("expected error for unknown system")
	}
}
