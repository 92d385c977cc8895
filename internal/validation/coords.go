package validation

import (
	"fmt"
	"time"
)

// MaxRangeDays ограничивает ширину запрашиваемого диапазона визитов,
// чтобы один запрос не вытягивал всю историю
const MaxRangeDays = 62

// ValidateCoordinates проверяет, что координаты лежат в допустимых
// географических пределах
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	return nil
}

// ValidateRange проверяет корректность запрошенного диапазона дат
func ValidateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("range bounds are required")
	}
	if !to.After(from) {
		return fmt.Errorf("range end must be after range start")
	}
	if to.Sub(from) > MaxRangeDays*24*time.Hour {
		return fmt.Errorf("range wider than %d days", MaxRangeDays)
	}
	return nil
}
