package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultPollInterval задает период фонового опроса сети
const DefaultPollInterval = 15 * time.Second

// Monitor tracks live network reachability and notifies subscribers.
// Subscribers are delivered each distinct state exactly once; identical
// consecutive states are deduplicated.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	stop     context.CancelFunc
	done     chan struct{}
	subs     map[int]func(State)
	interval time.Duration

	mu        sync.Mutex
	current   State
	nextSubID int
	started   bool
}

// NewMonitor creates a monitor polling prober every interval.
// Pass interval <= 0 for the default.
func NewMonitor(prober Prober, logger *slog.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		prober:   prober,
		logger:   logger,
		interval: interval,
		subs:     make(map[int]func(State)),
	}
}

// Current returns the cached last-known state without touching the
// network
func (m *Monitor) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers cb for state-change notifications and returns an
// unsubscribe function. After unsubscribe the callback is never invoked
// again.
func (m *Monitor) Subscribe(cb func(State)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = cb
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// CheckOnline performs a fresh probe instead of trusting the cached
// state, updates the cache, and reports whether the client is online
// (connected and internet-reachable)
func (m *Monitor) CheckOnline(ctx context.Context) (bool, error) {
	state, err := m.prober.Probe(ctx)
	if err != nil {
		return false, err
	}
	m.setState(state)
	return state.Online(), nil
}

// Start launches the background polling loop. Safe to call once;
// subsequent calls are ignored.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	m.stop = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		// Первый опрос сразу, не дожидаясь тика
		m.poll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.poll(ctx)
			}
		}
	}()
}

// Stop terminates the polling loop and waits for it to exit.
// Idempotent.
func (m *Monitor) Stop() {
	m.mu.Lock()
	started := m.started
	m.started = false
	m.mu.Unlock()

	if !started || m.stop == nil {
		return
	}
	m.stop()
	<-m.done
}

func (m *Monitor) poll(ctx context.Context) {
	state, err := m.prober.Probe(ctx)
	if err != nil {
		m.logger.Warn("connectivity probe failed", "error", err)
		return
	}
	m.setState(state)
}

// setState обновляет кэшированное состояние и синхронно уведомляет
// подписчиков; одинаковые состояния не рассылаются повторно
func (m *Monitor) setState(state State) {
	m.mu.Lock()
	if state == m.current {
		m.mu.Unlock()
		return
	}
	m.current = state
	cbs := make([]func(State), 0, len(m.subs))
	for _, cb := range m.subs {
		cbs = append(cbs, cb)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed",
		"connected", state.Connected,
		"internet_reachable", state.InternetReachable,
		"kind", state.Kind)

	for _, cb := range cbs {
		cb(state)
	}
}
