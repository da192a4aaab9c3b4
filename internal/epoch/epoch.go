// Package epoch converts between the time scales used by celestial
// reference frames: Besselian epochs (tropical-year based, used by FK4),
// Julian epochs (365.25-day years referenced to J2000, used by
// FK5/ICRS/J2000) and Julian Dates.
package epoch

import "math"

// Reference constants for the two epoch systems.
const (
	// jdB1900 is the Julian Date of the Besselian epoch B1900.0.
	jdB1900 = 2415020.31352

	// tropicalYear is the length of the tropical year in days at B1900,
	// per Newcomb's solar theory.
	tropicalYear = 365.242198781

	// JDJ2000 is the Julian Date of the J2000.0 epoch (2000 January 1.5 TT).
	JDJ2000 = 2451545.0

	// julianYear is the length of the Julian year in days, exactly.
	julianYear = 365.25

	// JDB1950 is the Julian Date of the Besselian epoch B1950.0. Time
	// arguments of the FK4 proper-motion corrections are referenced here.
	JDB1950 = 2433282.423
)

// BesselianToJD converts a Besselian epoch (decimal year) to Julian Date.
func BesselianToJD(b float64) float64 {
	return jdB1900 + (b-1900.0)*tropicalYear
}

// JDToBesselian converts a Julian Date to a Besselian epoch.
func JDToBesselian(jd float64) float64 {
	return 1900.0 + (jd-jdB1900)/tropicalYear
}

// JulianToJD converts a Julian epoch (decimal year) to Julian Date.
func JulianToJD(j float64) float64 {
	return JDJ2000 + (j-2000.0)*julianYear
}

// JDToJulian converts a Julian Date to a Julian epoch.
func JDToJulian(jd float64) float64 {
	return 2000.0 + (jd-JDJ2000)/julianYear
}

// CalendarToJD converts a calendar date to Julian Date. The day may carry a
// fraction. Dates on or after 1582 October 15 are interpreted in the
// Gregorian calendar, earlier dates in the Julian calendar, so the formula
// is valid across the calendar reform.
func CalendarToJD(year, month int, day float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	var b float64
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		a := math.Floor(float64(y) / 100.0)
		b = 2 - a + math.Floor(a/4.0)
	}

	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		day + b - 1524.5
}
