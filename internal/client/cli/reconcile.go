package cli

import (
	"context"

	"github.com/iudanet/homevisit/pkg/api"
)

func (c *Cli) runReconcile(ctx context.Context) error {
	c.io.Println("=== Reconcile ===")
	c.io.Println()
	c.io.Println("Pushing queued completions to the server...")

	result, err := c.syncService.Reconcile(ctx)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Reconciliation finished.")
	c.io.Println()
	c.io.Printf("Confirmed:           %d\n", result.Confirmed)
	if result.AlreadyCompleted > 0 {
		c.io.Printf("Already on server:   %d\n", result.AlreadyCompleted)
	}
	if result.TransportFailed > 0 {
		c.io.Printf("Will retry later:    %d\n", result.TransportFailed)
	}

	for _, rejection := range result.Rejected {
		switch rejection.Code {
		case api.CodeOutOfRange:
			c.io.Printf("✗ %s rejected: %s from the patient\n",
				rejection.VisitID, formatDistance(rejection.DistanceMeters))
		default:
			c.io.Printf("✗ %s rejected: %s\n", rejection.VisitID, rejection.Message)
		}
	}

	return nil
}
