package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sky/skygo/internal/convert"
	"github.com/sky/skygo/internal/crs"
	"github.com/sky/skygo/internal/epoch"
	"github.com/sky/skygo/internal/frame"
	"github.com/sky/skygo/internal/metrics"
	"github.com/sky/skygo/internal/precess"
)

// crsDescriptor is the wire form of a coordinate reference system. Frame,
// equinox and epoch of observation are epoch specification strings
// ("FK4", "B1950", "J2000.5", "JD2451545", ...); they are parsed here, at
// the boundary, so the conversion core only ever sees resolved values.
type crsDescriptor struct {
	System   string `json:"system"`
	Frame    string `json:"frame,omitempty"`
	Equinox  string `json:"equinox,omitempty"`
	EpochObs string `json:"epoch_obs,omitempty"`
}

func (d crsDescriptor) resolve() (crs.System, error) {
	kind, err := crs.ParseKind(d.System)
	if err != nil {
		return crs.System{}, err
	}

	switch kind {
	case crs.Galactic:
		return crs.NewGalactic(), nil
	case crs.Supergalactic:
		return crs.NewSupergalactic(), nil
	}

	fk := frame.ICRS
	if d.Frame != "" {
		fk, err = frame.ParseKind(d.Frame)
		if err != nil {
			return crs.System{}, err
		}
	}

	f := frame.New(fk)
	if d.Equinox != "" {
		f, err = f.WithEquinox(d.Equinox)
		if err != nil {
			return crs.System{}, err
		}
	}
	if d.EpochObs != "" {
		f, err = f.WithObsEpoch(d.EpochObs)
		if err != nil {
			return crs.System{}, err
		}
	}

	if kind == crs.Ecliptic {
		return crs.NewEcliptic(f), nil
	}
	return crs.NewEquatorial(f), nil
}

type positionResponse struct {
	Lon    float64 `json:"lon"`
	Lat    float64 `json:"lat"`
	System string  `json:"system"`
}

// errorKind classifies a request failure for the error counter.
func errorKind(err error) string {
	var rangeErr *convert.RangeError
	var parseErr *epoch.ParseError
	var transErr *precess.UnsupportedTransitionError
	var targetErr *crs.UnsupportedTargetError
	var mathErr *convert.MathError
	switch {
	case errors.As(err, &rangeErr):
		return "range"
	case errors.As(err, &parseErr):
		return "epoch_parse"
	case errors.As(err, &transErr), errors.As(err, &targetErr):
		return "unsupported"
	case errors.As(err, &mathErr):
		return "math"
	}
	return "request"
}

// writeBadRequest maps a conversion-layer error to a 400 JSON response.
// All domain errors are client errors: bad coordinates, bad epoch specs,
// or an unsupported frame transition.
func writeBadRequest(w http.ResponseWriter, err error) {
	metrics.ObserveConversionError(errorKind(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// conversionAPI bundles the handler dependencies.
type conversionAPI struct {
	logger            *slog.Logger
	pool              *convert.BatchPool
	parallelThreshold int
}

type convertRequest struct {
	Source crsDescriptor `json:"source"`
	Target crsDescriptor `json:"target"`
	Lon    float64       `json:"lon"`
	Lat    float64       `json:"lat"`
}

func (a *conversionAPI) convertHandler(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, errors.New("invalid JSON body"))
		return
	}

	source, err := req.Source.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	target, err := req.Target.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	pos, err := convert.Convert(source, target, req.Lon, req.Lat)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	metrics.ObserveConversion(source.Kind.String(), target.Kind.String(), 1)
	writeJSON(w, positionResponse{Lon: pos.Lon, Lat: pos.Lat, System: pos.System.String()})
}

type batchRequest struct {
	Source crsDescriptor `json:"source"`
	Target crsDescriptor `json:"target"`
	Coords []float64     `json:"coords"`
}

type batchResponse struct {
	Positions []positionResponse `json:"positions"`
	Count     int                `json:"count"`
}

func (a *conversionAPI) batchHandler(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, errors.New("invalid JSON body"))
		return
	}

	source, err := req.Source.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	target, err := req.Target.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	pairs := len(req.Coords) / 2
	metrics.ObserveBatchSize(pairs)

	var positions []convert.Position
	if pairs > a.parallelThreshold {
		positions, err = a.pool.ConvertBatch(r.Context(), source, target, req.Coords)
	} else {
		positions, err = convert.ConvertBatch(source, target, req.Coords)
	}
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	metrics.ObserveConversion(source.Kind.String(), target.Kind.String(), len(positions))
	resp := batchResponse{Positions: make([]positionResponse, len(positions)), Count: len(positions)}
	for i, p := range positions {
		resp.Positions[i] = positionResponse{Lon: p.Lon, Lat: p.Lat, System: p.System.String()}
	}
	writeJSON(w, resp)
}

type separationRequest struct {
	P1 struct {
		crsDescriptor
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"p1"`
	P2 struct {
		crsDescriptor
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"p2"`
}

func (a *conversionAPI) separationHandler(w http.ResponseWriter, r *http.Request) {
	var req separationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, errors.New("invalid JSON body"))
		return
	}

	s1, err := req.P1.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	s2, err := req.P2.resolve()
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	sep, err := convert.Separation(
		convert.Position{Lon: req.P1.Lon, Lat: req.P1.Lat, System: s1},
		convert.Position{Lon: req.P2.Lon, Lat: req.P2.Lat, System: s2},
	)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	writeJSON(w, map[string]float64{"separation_deg": sep})
}

type epochResponse struct {
	Spec       string  `json:"spec"`
	Besselian  float64 `json:"besselian"`
	Julian     float64 `json:"julian"`
	JulianDate float64 `json:"julian_date"`
}

func (a *conversionAPI) epochHandler(w http.ResponseWriter, r *http.Request) {
	spec := r.URL.Query().Get("spec")
	if spec == "" {
		writeBadRequest(w, errors.New("missing spec query parameter"))
		return
	}

	e, err := epoch.Parse(spec)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	writeJSON(w, epochResponse{
		Spec:       spec,
		Besselian:  e.Besselian,
		Julian:     e.Julian,
		JulianDate: e.JulianDate,
	})
}
