package cli

import (
	"context"
	"flag"
	"time"

	"github.com/iudanet/homevisit/internal/models"
)

// parseFetchArgs resolves the fetch flags into a scope
func parseFetchArgs(args []string) (models.Scope, bool, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	month := fs.String("month", "", "calendar month to show, YYYY-MM")
	force := fs.Bool("force", false, "refresh from the server even if the cache is fresh")
	if err := fs.Parse(args); err != nil {
		return "", false, err
	}

	if *month == "" {
		return models.ScopeToday, *force, nil
	}
	scope, err := parseMonthScope(*month)
	if err != nil {
		return "", false, err
	}
	return scope, *force, nil
}

func (c *Cli) runFetch(ctx context.Context, args []string) error {
	scope, force, err := parseFetchArgs(args)
	if err != nil {
		return err
	}

	result, err := c.syncService.FetchForRange(ctx, scope, force)
	if err != nil {
		return err
	}

	c.io.Printf("=== Visits: %s ===\n", scope)
	switch {
	case result.Offline:
		c.io.Printf("(offline, cached %s ago)\n", time.Since(result.FetchedAt).Round(time.Minute))
	case result.FromCache:
		c.io.Printf("(cached %s ago)\n", time.Since(result.FetchedAt).Round(time.Second))
	}
	c.io.Println()

	if len(result.Pending)+len(result.Completed) == 0 {
		c.io.Println("No visits scheduled.")
		return nil
	}

	if len(result.Pending) > 0 {
		c.io.Printf("Pending (%d):\n", len(result.Pending))
		for _, v := range result.Pending {
			c.printVisit(v)
		}
		c.io.Println()
	}

	if len(result.Completed) > 0 {
		c.io.Printf("Completed (%d):\n", len(result.Completed))
		for _, v := range result.Completed {
			c.printVisit(v)
		}
	}

	if result.Offline {
		c.io.Println()
		c.io.Println("⚠️  Showing cached data. Completions made now will be queued.")
	}

	return nil
}
