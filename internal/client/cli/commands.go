package cli

import (
	"context"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "fetch":
		err = c.runFetch(ctx, args)
	case "complete":
		err = c.runComplete(ctx, args)
	case "queue":
		err = c.runQueue(ctx)
	case "reconcile":
		err = c.runReconcile(ctx)
	default:
		c.io.Errorf("Unknown command: %s\n", command)
		c.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		c.io.Errorf("Error: %v\n", err)
		os.Exit(1)
	}
}
