package service

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatDuration renders hours as "2 days 3 hours" or "5 hours 30 min".
// Minutes are dropped once the duration reaches a day.
func FormatDuration(hours float64) string {
	if math.IsNaN(hours) || hours < 0 {
		hours = 0
	}
	totalMinutes := int64(math.Round(hours * 60))
	days := totalMinutes / (60 * 24)
	hrs := (totalMinutes % (60 * 24)) / 60
	mins := totalMinutes % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hrs > 0 {
		parts = append(parts, plural(hrs, "hour"))
	}
	if mins > 0 && days == 0 {
		parts = append(parts, fmt.Sprintf("%d min", mins))
	}
	if len(parts) == 0 {
		return "0 min"
	}
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatMoney renders v with two decimals and digit grouping, e.g. "$1,234.50".
func FormatMoney(symbol string, v float64) string {
	return symbol + moneyPrinter.Sprintf("%.2f", v)
}
