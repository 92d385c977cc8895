package connectivity

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober performs a single fresh reachability check
type Prober interface {
	// Probe returns the current connectivity state. The returned error
	// is reserved for programmer mistakes (bad URL); an unreachable
	// network is a valid State, not an error.
	Probe(ctx context.Context) (State, error)
}

// HTTPProber determines link state from the local interfaces and
// internet reachability by a HEAD request against the backend health
// endpoint
type HTTPProber struct {
	httpClient *http.Client
	healthURL  string
}

// NewHTTPProber creates a prober against baseURL (e.g. http://host:8080)
func NewHTTPProber(baseURL string) *HTTPProber {
	return &HTTPProber{
		healthURL: strings.TrimRight(baseURL, "/") + "/health",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Probe implements Prober
func (p *HTTPProber) Probe(ctx context.Context) (State, error) {
	state := State{Kind: KindNone}

	kind, up := linkState()
	if !up {
		return state, nil
	}
	state.Connected = true
	state.Kind = kind

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.healthURL, nil)
	if err != nil {
		return state, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Линк есть, но бэкенд/интернет недоступны
		return state, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	state.InternetReachable = resp.StatusCode < 500
	return state, nil
}

// linkState возвращает тип транспорта и признак поднятого не-loopback
// интерфейса с адресом
func linkState() (string, bool) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return KindUnknown, false
	}

	kind := KindUnknown
	up := false
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		up = true
		switch {
		case strings.HasPrefix(iface.Name, "wl"):
			kind = KindWifi
		case strings.HasPrefix(iface.Name, "ww"), strings.HasPrefix(iface.Name, "rmnet"):
			kind = KindCellular
		case strings.HasPrefix(iface.Name, "en"), strings.HasPrefix(iface.Name, "eth"):
			kind = KindWired
		}
	}
	return kind, up
}
