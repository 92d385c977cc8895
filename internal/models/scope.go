package models

import (
	"fmt"
	"strings"
	"time"
)

// Scope is a named date-range query key used to key cache entries,
// e.g. "today" or "month:2024-10".
type Scope string

// ScopeToday is the only scope that requires offline availability:
// a field worker must see today's visits without a network connection.
const ScopeToday Scope = "today"

const monthPrefix = "month:"

// MonthScope returns the scope covering the calendar month of t
func MonthScope(t time.Time) Scope {
	return Scope(monthPrefix + t.Format("2006-01"))
}

// Cacheable reports whether query results for this scope are persisted
// to the local cache. Only "today" matters offline.
func (s Scope) Cacheable() bool {
	return s == ScopeToday
}

// Range resolves the scope into a half-open interval [start, end)
// in the location of now
func (s Scope) Range(now time.Time) (time.Time, time.Time, error) {
	switch {
	case s == ScopeToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), nil
	case strings.HasPrefix(string(s), monthPrefix):
		month, err := time.ParseInLocation("2006-01", strings.TrimPrefix(string(s), monthPrefix), now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month scope %q: %w", s, err)
		}
		return month, month.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown scope %q", s)
	}
}

func (s Scope) String() string {
	return string(s)
}
