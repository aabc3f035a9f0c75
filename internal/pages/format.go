package pages

import (
	"fmt"
	"strconv"
)

// NotAvailable is shown for statistics of an empty dataset.
const NotAvailable = "N/A"

func formatRM(v float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("RM %.2f", v)
}

func formatFixed(v float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatHour(h int) string {
	return fmt.Sprintf("%d:00", h)
}

func orNA(s string, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return s
}

func hourLabels(hours []int) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = strconv.Itoa(h)
	}
	return out
}
