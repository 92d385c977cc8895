package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/homevisit/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Session: not authenticated")
		c.io.Println()
		c.io.Println("Run 'homevisit login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		c.io.Println("Session: authenticated")
		c.io.Printf("Username: %s\n", session.Username)
		c.io.Printf("Token expires: %s (in %s)\n",
			expiresAt.Format(time.RFC3339),
			time.Until(expiresAt).Round(time.Second))
	}

	c.io.Println()

	// Живая проверка: кэшированное состояние монитора в one-shot
	// команде еще пустое
	online, err := c.monitor.CheckOnline(ctx)
	switch {
	case err != nil:
		c.io.Printf("Connectivity: offline (%v)\n", err)
	case online:
		c.io.Println("Connectivity: online")
	default:
		c.io.Printf("Connectivity: offline (%s)\n", c.monitor.Current().Kind)
	}

	actions, err := c.syncService.ListOfflineQueue(ctx)
	if err != nil {
		// Статус не должен падать из-за очереди
		c.io.Printf("\nWarning: failed to read offline queue: %v\n", err)
		return nil
	}

	c.io.Println()
	if len(actions) > 0 {
		c.io.Printf("⚠️  Offline queue: %d completion(s) waiting for sync\n", len(actions))
		c.io.Println("Run 'homevisit reconcile' when a connection is available.")
	} else {
		c.io.Println("✓ Offline queue is empty")
	}

	return nil
}
