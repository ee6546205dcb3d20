package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in signed decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in signed decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in signed decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in signed decimal degrees.
	MaxLongitude = 180.0

	// EarthRadiusKm is the fixed spherical Earth radius used by DistanceKm.
	EarthRadiusKm = 6371.0

	// UnknownDistance is the sentinel returned by DistanceKm when either
	// point is missing. It is a designated non-error value so callers can
	// treat "unknown distance" as "fails any distance filter" without
	// branching on error kinds.
	UnknownDistance = -1.0
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a pair of geographic
// coordinates in signed decimal degrees. The zero value is invalid; use
// NewGeoPoint.
//
// Missing coordinates are modeled as a nil *GeoPoint, never as a zero value:
// a restaurant without stored coordinates carries a nil point and is excluded
// from distance-bounded queries through the UnknownDistance sentinel.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in signed decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in signed decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// String renders the point as "(lat, lon)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.lat, p.lon)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}
	p.lon = lon
	return nil
}

// DistanceKm computes the great-circle distance between two points in
// kilometers using the Haversine formula with a fixed Earth radius of
// EarthRadiusKm. The spherical approximation is intentional: the value
// drives coarse "is this restaurant within delivery range" decisions, not
// navigation.
//
// If either point is nil the function returns UnknownDistance (-1), not an
// error, so distance filters uniformly reject entries with missing
// coordinates.
//
// Properties: DistanceKm(a, a) == 0 and DistanceKm(a, b) == DistanceKm(b, a)
// for any valid points.
func DistanceKm(from, to *GeoPoint) float64 {
	if from == nil || to == nil {
		return UnknownDistance
	}

	lat1 := degToRad(from.lat)
	lat2 := degToRad(to.lat)
	dLat := degToRad(to.lat - from.lat)
	dLon := degToRad(to.lon - from.lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
