package cli

import (
	"context"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/iudanet/homevisit/internal/client/sync"
	"github.com/iudanet/homevisit/internal/validation"
	"github.com/iudanet/homevisit/pkg/api"
)

type completeArgs struct {
	visitID   string
	notes     string
	lat       float64
	lng       float64
	hasCoords bool
}

func parseCompleteArgs(args []string) (*completeArgs, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	visitID := fs.String("id", "", "visit id to complete")
	lat := fs.Float64("lat", math.NaN(), "worker latitude")
	lng := fs.Float64("lng", math.NaN(), "worker longitude")
	notes := fs.String("notes", "", "completion notes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *visitID == "" {
		return nil, fmt.Errorf("visit id is required, use -id")
	}

	parsed := &completeArgs{
		visitID: *visitID,
		notes:   *notes,
	}

	// Обе координаты либо заданы, либо обе берутся у провайдера
	latSet := !math.IsNaN(*lat)
	lngSet := !math.IsNaN(*lng)
	if latSet != lngSet {
		return nil, fmt.Errorf("-lat and -lng must be provided together")
	}
	if latSet {
		if err := validation.ValidateCoordinates(*lat, *lng); err != nil {
			return nil, err
		}
		parsed.lat, parsed.lng, parsed.hasCoords = *lat, *lng, true
	}

	return parsed, nil
}

func (c *Cli) runComplete(ctx context.Context, args []string) error {
	parsed, err := parseCompleteArgs(args)
	if err != nil {
		return err
	}

	lat, lng := parsed.lat, parsed.lng
	if !parsed.hasCoords {
		c.io.Println("Requesting current location...")
		pos, err := c.locations.RequestLocation(ctx)
		if err != nil {
			return fmt.Errorf("cannot determine location, pass -lat and -lng: %w", err)
		}
		lat, lng = pos.Lat, pos.Lng
		c.io.Printf("Location: %.6f, %.6f\n", lat, lng)
	}

	result, err := c.syncService.CompleteWithValidation(ctx, parsed.visitID, lat, lng, parsed.notes)
	if err != nil {
		return err
	}

	c.printCompleteResult(result)
	return nil
}

func (c *Cli) printCompleteResult(result *sync.CompleteResult) {
	switch {
	case result.Queued:
		c.io.Println("✓ Completion recorded offline.")
		c.io.Printf("Distance to patient: %s\n", formatDistance(result.DistanceMeters))
		c.io.Println()
		c.io.Println("It will be confirmed on the next reconcile.")

	case result.Success:
		c.io.Println("✓ Visit completed!")
		if result.DistanceMeters > 0 {
			c.io.Printf("Distance to patient: %s\n", formatDistance(result.DistanceMeters))
		}

	case result.Code == api.CodeOutOfRange:
		c.io.Println("✗ Too far from the patient's address.")
		c.io.Printf("Distance: %s, allowed: 50m\n", formatDistance(result.DistanceMeters))

	case result.Code == api.CodeDailyLimit:
		c.io.Println("✗ Daily limit for this patient and service reached.")
		if result.RetryAfter > 0 {
			c.io.Printf("Try again in %s (after midnight)\n", result.RetryAfter.Round(time.Minute))
		}

	case result.Code == api.CodeAlreadyCompleted:
		c.io.Println("Visit is already completed.")

	case result.Code == api.CodeNotFound:
		c.io.Println("✗ Visit not found.")

	default:
		c.io.Printf("✗ Completion rejected: %s\n", result.Message)
	}
}
