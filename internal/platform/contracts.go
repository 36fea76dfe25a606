// Package platform declares the contracts of the external services
// the client core talks to (auth, payments, places, secure storage)
// and ships the local implementations the app and tests run against.
package platform

import (
	"context"
	"time"
)

// AttemptStatus is the outcome of an auth attempt (verification,
// sign-in, password reset).
type AttemptStatus string

const (
	StatusComplete  AttemptStatus = "complete"
	StatusNeedsMore AttemptStatus = "needs_more"
	StatusRejected  AttemptStatus = "rejected"
)

// AttemptResult is returned by auth operations that may create a
// session. SessionID is set only when Status is StatusComplete.
type AttemptResult struct {
	Status    AttemptStatus
	SessionID string
}

// AuthAPI is the authentication provider: it owns accounts, emailed
// codes and sessions. Errors are provider rejections and carry a
// human-readable message.
type AuthAPI interface {
	CreateAccount(ctx context.Context, email, password string) error
	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (AttemptResult, error)
	BeginSignIn(ctx context.Context, identifier, password string) (AttemptResult, error)
	BeginPasswordReset(ctx context.Context, identifier string) error
	CompletePasswordReset(ctx context.Context, identifier, code, newPassword string) (AttemptResult, error)
	ActivateSession(ctx context.Context, sessionID string) error
}

// PaymentsAPI presents the provider's payment sheet for a fare.
type PaymentsAPI interface {
	PresentPaymentUI(ctx context.Context, amount float64, currency, payerName, payerEmail string) error
}

// Place is one autocomplete suggestion.
type Place struct {
	Description string
	PlaceID     string
}

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// PlacesAPI is the places/geocoding provider.
type PlacesAPI interface {
	Autocomplete(ctx context.Context, query string) ([]Place, error)
	ResolveDetails(ctx context.Context, placeID string) (LatLng, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// DirectionsAPI estimates driving time between two points.
type DirectionsAPI interface {
	DriveTime(ctx context.Context, from, to LatLng) (time.Duration, error)
}

// SecureStore is the device keychain. Failures degrade to "value
// absent" at the call sites; they are never fatal.
type SecureStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
