package epoch

import (
	"fmt"
	"strconv"
	"strings"
)

// Epoch is a single moment expressed in all three supported time scales.
type Epoch struct {
	Besselian  float64
	Julian     float64
	JulianDate float64
}

// ParseError reports an epoch string that could not be interpreted.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed epoch %q: %s", e.Spec, e.Reason)
}

// Offsets for the reduced Julian Date variants.
const (
	mjdOffset = 2400000.5
	rjdOffset = 2400000.0
)

// Parse interprets an epoch specification string and returns the moment in
// all three time scales. The prefix selects the scale:
//
//	B1950.0    Besselian epoch
//	-B12.5     Besselian epoch, negated (epochs before year 0)
//	J2000.5    Julian epoch
//	-J5.0      Julian epoch, negated
//	JD2451545  Julian Date
//	MJD51544.5 Modified Julian Date (JD − 2400000.5)
//	RJD51544   Reduced Julian Date (JD − 2400000)
//	F2002-04-04T09:42:42  FITS-style date, also the old F29/11/57 form
//
// Anything after an underscore is treated as a comment suffix and ignored
// (e.g. "B1950_OBS"). A specification without a recognized prefix fails.
func Parse(spec string) (Epoch, error) {
	s := strings.TrimSpace(spec)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return Epoch{}, &ParseError{Spec: spec, Reason: "empty specification"}
	}

	upper := strings.ToUpper(s)

	// Longest prefixes first so that "MJD"/"RJD"/"JD" win over "J".
	for _, p := range []struct {
		prefix string
		conv   func(string, string) (float64, error)
	}{
		{"MJD", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return v + mjdOffset, err
		}},
		{"RJD", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return v + rjdOffset, err
		}},
		{"JD", parseNumber},
		{"-B", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return BesselianToJD(-v), err
		}},
		{"-J", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return JulianToJD(-v), err
		}},
		{"B", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return BesselianToJD(v), err
		}},
		{"J", func(spec, rest string) (float64, error) {
			v, err := parseNumber(spec, rest)
			return JulianToJD(v), err
		}},
		{"F", parseFITSDate},
	} {
		if strings.HasPrefix(upper, p.prefix) {
			jd, err := p.conv(spec, strings.TrimSpace(s[len(p.prefix):]))
			if err != nil {
				return Epoch{}, err
			}
			return fromJD(jd), nil
		}
	}

	return Epoch{}, &ParseError{Spec: spec, Reason: "no epoch prefix (expected B, -B, J, -J, JD, MJD, RJD or F)"}
}

func fromJD(jd float64) Epoch {
	return Epoch{
		Besselian:  JDToBesselian(jd),
		Julian:     JDToJulian(jd),
		JulianDate: jd,
	}
}

func parseNumber(spec, rest string) (float64, error) {
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, &ParseError{Spec: spec, Reason: "numeric part does not parse"}
	}
	return v, nil
}

// parseFITSDate converts the remainder of an F-prefixed specification to a
// Julian Date. Supported layouts are the current FITS DATE form
// YYYY-MM-DD with optional THH:MM[:SS[.s...]] time part, and the pre-2000
// DD/MM/YY form, whose two-digit year is taken in the 1900s.
func parseFITSDate(spec, rest string) (float64, error) {
	if rest == "" {
		return 0, &ParseError{Spec: spec, Reason: "empty FITS date"}
	}

	if strings.Contains(rest, "/") {
		parts := strings.Split(rest, "/")
		if len(parts) != 3 {
			return 0, &ParseError{Spec: spec, Reason: "old FITS date must be DD/MM/YY"}
		}
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		yy, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, &ParseError{Spec: spec, Reason: "old FITS date fields do not parse"}
		}
		return CalendarToJD(1900+yy, month, float64(day)), nil
	}

	datePart, timePart, hasTime := strings.Cut(rest, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return 0, &ParseError{Spec: spec, Reason: "FITS date must be YYYY-MM-DD"}
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, &ParseError{Spec: spec, Reason: "FITS date fields do not parse"}
	}

	dayFrac := 0.0
	if hasTime {
		frac, err := parseDayFraction(timePart)
		if err != nil {
			return 0, &ParseError{Spec: spec, Reason: err.Error()}
		}
		dayFrac = frac
	}

	return CalendarToJD(year, month, float64(day)+dayFrac), nil
}

func parseDayFraction(timePart string) (float64, error) {
	fields := strings.Split(timePart, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, fmt.Errorf("FITS time must be HH:MM or HH:MM:SS")
	}
	hours, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("FITS time hours do not parse")
	}
	minutes, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("FITS time minutes do not parse")
	}
	seconds := 0.0
	if len(fields) == 3 {
		seconds, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, fmt.Errorf("FITS time seconds do not parse")
		}
	}
	return (hours + minutes/60.0 + seconds/3600.0) / 24.0, nil
}
