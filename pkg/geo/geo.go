// Package geo derives map viewports and driver markers from raw
// coordinates. Everything here is pure: same input, same output.
package geo

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Default viewport applied when only one (or neither) endpoint of the
// ride is known.
const (
	DefaultLatitudeDelta  = 0.01
	DefaultLongitudeDelta = 0.01

	// Fallback center when the user's own position is unknown.
	FallbackLatitude  = 37.78825
	FallbackLongitude = -122.4324

	// Padding applied around the user/destination bounding box so
	// neither pin sits on the viewport edge.
	boundsPadding = 1.3

	// Maximum marker offset from the user position, in degrees.
	markerSpread = 0.005
)

// Region is a map viewport: a center point plus zoom deltas.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

// RegionInput carries the known ride endpoints. Nil means unset.
type RegionInput struct {
	UserLatitude         *float64
	UserLongitude        *float64
	DestinationLatitude  *float64
	DestinationLongitude *float64
}

// CalculateRegion returns the viewport for the current ride state.
// With no destination it centers on the user at the default zoom; with
// both endpoints it returns a padded bounding box containing both,
// never zoomed in tighter than the single-point case.
func CalculateRegion(in RegionInput) Region {
	if in.UserLatitude == nil || in.UserLongitude == nil {
		return Region{
			Latitude:       FallbackLatitude,
			Longitude:      FallbackLongitude,
			LatitudeDelta:  DefaultLatitudeDelta,
			LongitudeDelta: DefaultLongitudeDelta,
		}
	}

	if in.DestinationLatitude == nil || in.DestinationLongitude == nil {
		return Region{
			Latitude:       *in.UserLatitude,
			Longitude:      *in.UserLongitude,
			LatitudeDelta:  DefaultLatitudeDelta,
			LongitudeDelta: DefaultLongitudeDelta,
		}
	}

	minLat := math.Min(*in.UserLatitude, *in.DestinationLatitude)
	maxLat := math.Max(*in.UserLatitude, *in.DestinationLatitude)
	minLng := math.Min(*in.UserLongitude, *in.DestinationLongitude)
	maxLng := math.Max(*in.UserLongitude, *in.DestinationLongitude)

	return Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLng + maxLng) / 2,
		LatitudeDelta:  math.Max(DefaultLatitudeDelta, (maxLat-minLat)*boundsPadding),
		LongitudeDelta: math.Max(DefaultLongitudeDelta, (maxLng-minLng)*boundsPadding),
	}
}

// MarkerSeed identifies one driver to place on the map.
type MarkerSeed struct {
	ID    int
	Title string
}

// Marker is a renderable map pin for a driver.
type Marker struct {
	ID        int
	Title     string
	Latitude  float64
	Longitude float64
}

// GenerateMarkers places one marker per driver near the user position.
// The upstream data has no real per-driver coordinates, so each marker
// gets an offset derived from the driver id; repeated calls with the
// same input yield identical markers.
func GenerateMarkers(userLat, userLng float64, seeds []MarkerSeed) []Marker {
	markers := make([]Marker, 0, len(seeds))
	for _, s := range seeds {
		markers = append(markers, Marker{
			ID:        s.ID,
			Title:     s.Title,
			Latitude:  userLat + seededOffset(s.ID, 0),
			Longitude: userLng + seededOffset(s.ID, 1),
		})
	}
	return markers
}

// DistanceKm returns the haversine distance between two points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return R * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// seededOffset maps (driver id, axis) to a stable offset in
// [-markerSpread, markerSpread].
func seededOffset(id, axis int) float64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(axis))
	h.Write(buf[:])
	// scale the hash into [0,1), then center it
	frac := float64(h.Sum64()>>11) / float64(uint64(1)<<53)
	return (frac - 0.5) * 2 * markerSpread
}
