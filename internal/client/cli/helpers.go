package cli

import (
	"fmt"
	"time"

	"github.com/iudanet/homevisit/internal/models"
)

// parseMonthScope превращает "YYYY-MM" в scope месяца
func parseMonthScope(month string) (models.Scope, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return models.MonthScope(t), nil
}

// formatDistance renders meters for humans
func formatDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1fkm", meters/1000)
	}
	return fmt.Sprintf("%.0fm", meters)
}

// formatAmount renders cents as whole currency units
func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func (c *Cli) printVisit(v models.Visit) {
	c.io.Printf("  [%s] %s  %s\n", v.Status, v.ScheduledAt.Format("15:04"), v.PatientName)
	c.io.Printf("      id: %s\n", v.ID)
	if v.Address != "" {
		c.io.Printf("      address: %s\n", v.Address)
	}
	if v.ServiceType != "" {
		c.io.Printf("      service: %s (%s)\n", v.ServiceType, formatAmount(v.AmountCents))
	}
	if v.Notes != "" {
		c.io.Printf("      notes: %s\n", v.Notes)
	}
}
