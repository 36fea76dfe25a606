package platform

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rider-client/pkg/geo"
)

// StaticPlaces is an offline PlacesAPI/DirectionsAPI backed by a fixed
// place list. Drive times assume a 40 km/h average over the haversine
// distance.
type StaticPlaces struct {
	places map[string]staticPlace
}

type staticPlace struct {
	description string
	at          LatLng
}

// NewStaticPlaces returns a provider seeded with a handful of pickup
// spots around the default map center.
func NewStaticPlaces() *StaticPlaces {
	return &StaticPlaces{places: map[string]staticPlace{
		"pl-ferry":    {"Ferry Building, San Francisco", LatLng{37.7955, -122.3937}},
		"pl-golden":   {"Golden Gate Park, San Francisco", LatLng{37.7694, -122.4862}},
		"pl-mission":  {"Mission District, San Francisco", LatLng{37.7599, -122.4148}},
		"pl-presidio": {"Presidio of San Francisco", LatLng{37.7989, -122.4662}},
	}}
}

func (p *StaticPlaces) Autocomplete(_ context.Context, query string) ([]Place, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Place
	for id, pl := range p.places {
		if q == "" || strings.Contains(strings.ToLower(pl.description), q) {
			out = append(out, Place{Description: pl.description, PlaceID: id})
		}
	}
	return out, nil
}

func (p *StaticPlaces) ResolveDetails(_ context.Context, placeID string) (LatLng, error) {
	pl, ok := p.places[placeID]
	if !ok {
		return LatLng{}, fmt.Errorf("unknown place %q", placeID)
	}
	return pl.at, nil
}

func (p *StaticPlaces) ReverseGeocode(_ context.Context, lat, lng float64) (string, error) {
	best := ""
	bestKm := 2.0 // anything farther gets a raw coordinate label
	for _, pl := range p.places {
		if d := geo.DistanceKm(lat, lng, pl.at.Lat, pl.at.Lng); d < bestKm {
			best, bestKm = pl.description, d
		}
	}
	if best == "" {
		return fmt.Sprintf("%.4f, %.4f", lat, lng), nil
	}
	return best, nil
}

func (p *StaticPlaces) DriveTime(_ context.Context, from, to LatLng) (time.Duration, error) {
	km := geo.DistanceKm(from.Lat, from.Lng, to.Lat, to.Lng)
	return time.Duration(km / 40.0 * float64(time.Hour)), nil
}

// LogPayments is a PaymentsAPI that records the request and approves
// it, standing in for the provider's payment sheet.
type LogPayments struct{}

func (LogPayments) PresentPaymentUI(_ context.Context, amount float64, currency, payerName, payerEmail string) error {
	log.Printf("[payments] sheet presented: %.2f %s for %s <%s>", amount, currency, payerName, payerEmail)
	return nil
}
