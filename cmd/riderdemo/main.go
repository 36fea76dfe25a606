// Command riderdemo walks the client core through a full session
// against the in-process providers: sign up, verify, pick locations,
// choose a driver and pay. It exists to exercise the flows end to end
// without a device.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rider-client/internal/config"
	"rider-client/internal/platform"
	"rider-client/internal/rides"
	"rider-client/internal/signup"
	"rider-client/internal/store"
	"rider-client/pkg/geo"
)

var rootCmd = &cobra.Command{
	Use:   "riderdemo",
	Short: "Walk the ride-hailing client core through a scripted session",
	RunE:  run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()

	// ── 1. Collaborators ──
	auth := platform.NewMemAuth(cfg.Auth.SessionSecret)
	places := platform.NewStaticPlaces()
	payments := platform.LogPayments{}
	tokens := platform.NewTokenCache(platform.NewMemSecureStore())

	// ── 2. Stores ──
	driverStore := store.NewDriverStore()
	locationStore := store.NewLocationStore(driverStore.ClearSelectedDriver)

	// ── 3. Sign up and verify ──
	flow := signup.New(signup.Config{
		Auth:       auth,
		OnNavigate: func() { log.Println("[demo] navigated to home") },
		NavDelay:   100 * time.Millisecond,
	})
	defer flow.Close()

	flow.SetName("Ada Rider")
	flow.SetEmail("ada@example.com")
	flow.SetPassword("Sup3rSecret")
	flow.SetConfirmPassword("Sup3rSecret")
	flow.Submit(ctx)
	if flow.Stage() != signup.StagePending {
		return fmt.Errorf("sign-up did not reach pending: %+v", flow.FormErrors())
	}
	log.Printf("[demo] account created, strength=%s", flow.Strength().Label)

	flow.SetCode(auth.PendingCode("ada@example.com"))
	flow.Verify(ctx)
	if flow.Stage() != signup.StageSuccess {
		return fmt.Errorf("verification failed: %s", flow.Error())
	}
	log.Println("[demo] email verified, session active")

	// Cache a session token the way the app does after activation.
	res, err := auth.BeginSignIn(ctx, "ada@example.com", "Sup3rSecret")
	if err != nil {
		return err
	}
	if err := auth.ActivateSession(ctx, res.SessionID); err != nil {
		return err
	}
	if token, err := auth.IssueToken(res.SessionID); err == nil {
		tokens.Save(cfg.Auth.TokenCacheKey, token)
	}

	// ── 4. Pick locations ──
	pickup, err := places.ReverseGeocode(ctx, 37.7955, -122.3937)
	if err != nil {
		return err
	}
	locationStore.SetUserLocation(37.7955, -122.3937, pickup)

	suggestions, err := places.Autocomplete(ctx, "golden")
	if err != nil || len(suggestions) == 0 {
		return fmt.Errorf("no destination suggestions: %v", err)
	}
	dest, err := places.ResolveDetails(ctx, suggestions[0].PlaceID)
	if err != nil {
		return err
	}
	locationStore.SetDestinationLocation(dest.Lat, dest.Lng, suggestions[0].Description)

	loc := locationStore.Snapshot()
	region := geo.CalculateRegion(geo.RegionInput{
		UserLatitude:         loc.UserLatitude,
		UserLongitude:        loc.UserLongitude,
		DestinationLatitude:  loc.DestinationLatitude,
		DestinationLongitude: loc.DestinationLongitude,
	})
	log.Printf("[demo] viewport center=(%.4f, %.4f) delta=(%.4f, %.4f)",
		region.Latitude, region.Longitude, region.LatitudeDelta, region.LongitudeDelta)

	// ── 5. Choose a driver ──
	placed := rides.Placed(rides.Catalog(), *loc.UserLatitude, *loc.UserLongitude)
	enriched := rides.NewEnricher(places).DriverTimes(ctx, placed,
		platform.LatLng{Lat: *loc.UserLatitude, Lng: *loc.UserLongitude},
		platform.LatLng{Lat: *loc.DestinationLatitude, Lng: *loc.DestinationLongitude})
	driverStore.SetDrivers(enriched)

	chosen := enriched[0]
	if err := driverStore.SetSelectedDriver(chosen.ID); err != nil {
		return err
	}
	log.Printf("[demo] selected %s: eta %.1f min, $%.2f", chosen.Title, *chosen.ETAMinutes, *chosen.Price)

	// ── 6. Pay ──
	if err := payments.PresentPaymentUI(ctx, *chosen.Price, cfg.Payments.Currency, "Ada Rider", "ada@example.com"); err != nil {
		return err
	}

	time.Sleep(150 * time.Millisecond) // let the deferred navigation fire
	log.Println("[demo] done")
	return nil
}
