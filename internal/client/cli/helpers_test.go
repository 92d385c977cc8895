package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homevisit/internal/models"
)

func TestParseMonthScope(t *testing.T) {
	scope, err := parseMonthScope("2024-10")
	require.NoError(t, err)
	assert.Equal(t, models.Scope("month:2024-10"), scope)
}

func TestParseMonthScopeInvalid(t *testing.T) {
	for _, bad := range []string{"2024", "october", "2024-13", ""} {
		_, err := parseMonthScope(bad)
		assert.Error(t, err, "month %q", bad)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "42m", formatDistance(42.3))
	assert.Equal(t, "1.5km", formatDistance(1500))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150.00", formatAmount(15000))
	assert.Equal(t, "0.05", formatAmount(5))
}

func TestParseFetchArgs(t *testing.T) {
	scope, force, err := parseFetchArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, models.ScopeToday, scope)
	assert.False(t, force)

	scope, force, err = parseFetchArgs([]string{"-month", "2024-10", "-force"})
	require.NoError(t, err)
	assert.Equal(t, models.Scope("month:2024-10"), scope)
	assert.True(t, force)

	_, _, err = parseFetchArgs([]string{"-month", "next"})
	assert.Error(t, err)
}

func TestParseCompleteArgs(t *testing.T) {
	parsed, err := parseCompleteArgs([]string{"-id", "visit-1", "-lat", "55.75", "-lng", "37.61", "-notes", "ok"})
	require.NoError(t, err)
	assert.Equal(t, "visit-1", parsed.visitID)
	assert.True(t, parsed.hasCoords)
	assert.Equal(t, 55.75, parsed.lat)
	assert.Equal(t, "ok", parsed.notes)
}

func TestParseCompleteArgsCoordsOptional(t *testing.T) {
	parsed, err := parseCompleteArgs([]string{"-id", "visit-1"})
	require.NoError(t, err)
	assert.False(t, parsed.hasCoords)
}

func TestParseCompleteArgsRejectsPartialCoords(t *testing.T) {
	_, err := parseCompleteArgs([]string{"-id", "visit-1", "-lat", "55.75"})
	assert.Error(t, err)
}

func TestParseCompleteArgsRequiresID(t *testing.T) {
	_, err := parseCompleteArgs([]string{"-lat", "55.75", "-lng", "37.61"})
	assert.Error(t, err)
}

func TestParseCompleteArgsValidatesCoordinates(t *testing.T) {
	_, err := parseCompleteArgs([]string{"-id", "visit-1", "-lat", "95", "-lng", "37.61"})
	assert.Error(t, err)
}
