package cli

import (
	"github.com/iudanet/homevisit/internal/client/auth"
	"github.com/iudanet/homevisit/internal/client/connectivity"
	"github.com/iudanet/homevisit/internal/client/iocli"
	"github.com/iudanet/homevisit/internal/client/location"
	"github.com/iudanet/homevisit/internal/client/sync"
)

type Cli struct {
	authService *auth.Service
	syncService *sync.Service
	monitor     *connectivity.Monitor
	locations   location.Provider
	io          iocli.IO
}

func New(
	authService *auth.Service,
	syncService *sync.Service,
	monitor *connectivity.Monitor,
	locations location.Provider,
	io iocli.IO,
) *Cli {
	return &Cli{
		authService: authService,
		syncService: syncService,
		monitor:     monitor,
		locations:   locations,
		io:          io,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("HomeVisit Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  homevisit [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --server URL   Server URL (default: http://localhost:8080)")
	c.io.Println("  --db PATH      Path to local database (default: homevisit-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login                          Login to server")
	c.io.Println("  logout                         Logout and drop the local session")
	c.io.Println("  status                         Show session, connectivity and queue state")
	c.io.Println("  fetch [-month YYYY-MM] [-force] Show visits for today or a month")
	c.io.Println("  complete -id ID [-lat F -lng F] [-notes TEXT]")
	c.io.Println("                                 Complete a visit at the given coordinates")
	c.io.Println("  queue                          List completions waiting for sync")
	c.io.Println("  reconcile                      Push queued completions to the server")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  homevisit login")
	c.io.Println("  homevisit fetch")
	c.io.Println("  homevisit fetch -month 2024-10")
	c.io.Println("  homevisit fetch -force")
	c.io.Println("  homevisit complete -id b692f5c0 -lat 55.7558 -lng 37.6173 -notes 'all fine'")
	c.io.Println("  homevisit reconcile")
}
