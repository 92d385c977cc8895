// Package location abstracts the device position source for completion
// flows. Acquisition is always bounded: a provider resolves to
// ErrUnavailable instead of hanging, since completion blocks on it.
package location

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable означает, что позицию получить не удалось: отказ в
// разрешении, нет GPS или истек лимит ожидания
var ErrUnavailable = errors.New("location unavailable")

// DefaultTimeout ограничивает ожидание позиции
const DefaultTimeout = 10 * time.Second

// Position is a device fix
type Position struct {
	Lat            float64
	Lng            float64
	AccuracyMeters float64
}

//go:generate moq -out provider_mock.go . Provider

// Provider yields the current device position
type Provider interface {
	// RequestLocation returns the current position or ErrUnavailable.
	// Implementations must respect ctx cancellation.
	RequestLocation(ctx context.Context) (*Position, error)
}

// Static is a provider returning a fixed position. Used by the CLI
// (coordinates from flags) and in tests.
type Static struct {
	pos Position
}

// NewStatic creates a provider pinned to the given coordinates
func NewStatic(lat, lng float64) *Static {
	return &Static{pos: Position{Lat: lat, Lng: lng}}
}

// RequestLocation implements Provider
func (s *Static) RequestLocation(ctx context.Context) (*Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrUnavailable
	}
	pos := s.pos
	return &pos, nil
}

// Unavailable is a provider without a position source: every request
// resolves to ErrUnavailable. Используется, когда у устройства нет
// локатора и координаты обязаны прийти из флагов.
type Unavailable struct{}

// RequestLocation implements Provider
func (Unavailable) RequestLocation(context.Context) (*Position, error) {
	return nil, ErrUnavailable
}

// Bounded wraps a provider with a wait ceiling
type Bounded struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds the wrapped provider's acquisition time.
// Pass timeout <= 0 for the default.
func WithTimeout(inner Provider, timeout time.Duration) *Bounded {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bounded{inner: inner, timeout: timeout}
}

// RequestLocation implements Provider. Любой сбой или истекший лимит
// схлопывается в ErrUnavailable - вызывающий код не должен различать
// причины недоступности позиции.
func (b *Bounded) RequestLocation(ctx context.Context) (*Position, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type result struct {
		pos *Position
		err error
	}
	ch := make(chan result, 1)

	go func() {
		pos, err := b.inner.RequestLocation(ctx)
		ch <- result{pos: pos, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrUnavailable
	case res := <-ch:
		if res.err != nil || res.pos == nil {
			return nil, ErrUnavailable
		}
		return res.pos, nil
	}
}
