package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runQueue(ctx context.Context) error {
	actions, err := c.syncService.ListOfflineQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to read offline queue: %w", err)
	}

	c.io.Println("=== Offline Queue ===")
	c.io.Println()

	if len(actions) == 0 {
		c.io.Println("No completions waiting for sync.")
		return nil
	}

	c.io.Printf("%d completion(s) waiting:\n", len(actions))
	for _, action := range actions {
		c.io.Printf("  %s  queued %s ago, %s from patient\n",
			action.VisitID,
			time.Since(action.EnqueuedAt).Round(time.Minute),
			formatDistance(action.DistanceMeters))
	}

	c.io.Println()
	c.io.Println("Run 'homevisit reconcile' to push them to the server.")
	return nil
}
