package rides

import (
	"context"
	"log"

	"rider-client/internal/platform"
	"rider-client/pkg/geo"
)

// Fare model: a per-minute rate applied to the driver's pickup leg
// plus the trip itself.
const pricePerMinute = 0.5

// Fallback speed used when the directions provider is unavailable.
const fallbackSpeedKmh = 40.0

// Placed copies drivers with marker coordinates near the user point.
// Placement is deterministic per driver id.
func Placed(drivers []Driver, userLat, userLng float64) []Driver {
	seeds := make([]geo.MarkerSeed, len(drivers))
	for i, d := range drivers {
		seeds[i] = geo.MarkerSeed{ID: d.ID, Title: d.Title}
	}
	markers := geo.GenerateMarkers(userLat, userLng, seeds)

	out := make([]Driver, len(drivers))
	for i, d := range drivers {
		d.Latitude = markers[i].Latitude
		d.Longitude = markers[i].Longitude
		out[i] = d
	}
	return out
}

// Enricher fills in per-driver ETA and price once both ride endpoints
// are known.
type Enricher struct {
	directions platform.DirectionsAPI
}

// NewEnricher creates an enricher backed by the given directions
// provider. A nil provider always takes the haversine fallback.
func NewEnricher(directions platform.DirectionsAPI) *Enricher {
	return &Enricher{directions: directions}
}

// DriverTimes returns drivers with ETAMinutes and Price set: the time
// for the driver to reach the user plus the user-to-destination leg.
// Provider failures fall back to a distance-based estimate so the list
// always prices.
func (e *Enricher) DriverTimes(ctx context.Context, drivers []Driver, user, dest platform.LatLng) []Driver {
	out := make([]Driver, len(drivers))
	for i, d := range drivers {
		pickup := e.legMinutes(ctx, platform.LatLng{Lat: d.Latitude, Lng: d.Longitude}, user)
		trip := e.legMinutes(ctx, user, dest)

		eta := pickup + trip
		price := eta * pricePerMinute
		d.ETAMinutes = &eta
		d.Price = &price
		out[i] = d
	}
	return out
}

func (e *Enricher) legMinutes(ctx context.Context, from, to platform.LatLng) float64 {
	if e.directions != nil {
		if dur, err := e.directions.DriveTime(ctx, from, to); err == nil {
			return dur.Minutes()
		} else {
			log.Printf("[rides] drive time lookup failed, using distance estimate: %v", err)
		}
	}
	km := geo.DistanceKm(from.Lat, from.Lng, to.Lat, to.Lng)
	return km / fallbackSpeedKmh * 60
}
