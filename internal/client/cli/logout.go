package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	c.io.Println("✓ Logged out.")
	c.io.Println()
	c.io.Println("Cached visits and the offline queue are kept on this device.")
	return nil
}
