// Package connectivity tracks network reachability for the sync engine.
// The monitor keeps a cached last-known state, notifies subscribers on
// changes, and can run a fresh probe when a caller needs ground truth
// before a remote operation.
package connectivity

// Transport kinds reported by the prober
const (
	KindWifi     = "wifi"
	KindCellular = "cellular"
	KindWired    = "wired"
	KindNone     = "none"
	KindUnknown  = "unknown"
)

// State represents the process-wide connectivity snapshot
type State struct {
	Kind              string `json:"kind"`
	Connected         bool   `json:"connected"`
	InternetReachable bool   `json:"internet_reachable"`
}

// Online reports whether the client can actually talk to the backend.
// Требуются оба флага: линк может быть поднят без выхода в интернет
// (captive portal, сбой маршрутизации).
func (s State) Online() bool {
	return s.Connected && s.InternetReachable
}
