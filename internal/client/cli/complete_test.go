package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/homevisit/internal/client/iocli"
	"github.com/iudanet/homevisit/internal/client/sync"
	"github.com/iudanet/homevisit/pkg/api"
)

// capturedIO собирает весь вывод команды в буфер
func capturedIO() (*iocli.IOMock, *strings.Builder) {
	var out strings.Builder
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&out, format, a...)
		},
		ErrorfFunc: func(format string, a ...any) {
			fmt.Fprintf(&out, format, a...)
		},
	}
	return mock, &out
}

func TestPrintCompleteResultQueued(t *testing.T) {
	io, out := capturedIO()
	c := &Cli{io: io}

	c.printCompleteResult(&sync.CompleteResult{
		Success:        true,
		Queued:         true,
		Code:           api.CodeOK,
		DistanceMeters: 12,
	})

	assert.Contains(t, out.String(), "recorded offline")
	assert.Contains(t, out.String(), "12m")
}

func TestPrintCompleteResultOutOfRange(t *testing.T) {
	io, out := capturedIO()
	c := &Cli{io: io}

	c.printCompleteResult(&sync.CompleteResult{
		Code:           api.CodeOutOfRange,
		DistanceMeters: 1500,
	})

	assert.Contains(t, out.String(), "Too far")
	assert.Contains(t, out.String(), "1.5km")
}

func TestPrintCompleteResultDailyLimit(t *testing.T) {
	io, out := capturedIO()
	c := &Cli{io: io}

	c.printCompleteResult(&sync.CompleteResult{
		Code:       api.CodeDailyLimit,
		RetryAfter: 2*time.Hour + 30*time.Minute,
	})

	assert.Contains(t, out.String(), "Daily limit")
	assert.Contains(t, out.String(), "2h30m")
}
