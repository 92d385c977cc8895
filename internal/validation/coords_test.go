package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid buenos aires", -34.6037, -58.3816, false},
		{"valid zero", 0, 0, false},
		{"valid bounds", 90, 180, false},
		{"valid negative bounds", -90, -180, false},
		{"lat too high", 90.1, 0, true},
		{"lat too low", -90.1, 0, true},
		{"lng too high", 0, 180.1, true},
		{"lng too low", 0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lng)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	from := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateRange(from, from.AddDate(0, 1, 0)))
	assert.Error(t, ValidateRange(time.Time{}, from))
	assert.Error(t, ValidateRange(from, time.Time{}))
	assert.Error(t, ValidateRange(from, from))
	assert.Error(t, ValidateRange(from.AddDate(0, 1, 0), from))
	assert.Error(t, ValidateRange(from, from.AddDate(0, 3, 0)))
}
