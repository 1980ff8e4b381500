// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// templateFuncs returns the helpers available to every template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatNumber":  formatWithCommas,
		"formatPercent": func(f float64) string { return fmt.Sprintf("%.0f%%", f) },
		"formatFloat": func(f float64, precision int) string {
			return fmt.Sprintf("%.*f", precision, f)
		},
		"barPercent": barPercent,
		"hourLabel":  hourLabel,
		"dayName":    func(i int) string { return models.DayNames[i] },
		"monthShort": func(i int) string { return models.MonthNames[i][:3] },
		"pluralize":  pluralize,
		"tierClass":  func(tier string) string { return "badge-" + strings.ToLower(tier) },
		"add":        func(a, b int) int { return a + b },
	}
}

// formatWithCommas formats an integer with thousands separators.
func formatWithCommas(n int) string {
	if n < 0 {
		return "-" + formatWithCommas(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}

// barPercent scales v against the largest value in a distribution, for
// CSS bar heights. It accepts the fixed-size distribution arrays.
func barPercent(v int, dist interface{}) int {
	var values []int
	switch d := dist.(type) {
	case [24]int:
		values = d[:]
	case [12]int:
		values = d[:]
	case [7]int:
		values = d[:]
	case []int:
		values = d
	}

	maxV := 0
	for _, x := range values {
		if x > maxV {
			maxV = x
		}
	}
	if maxV == 0 {
		return 0
	}
	return v * 100 / maxV
}

// hourLabel renders 0-23 as 12am, 1am ... 11pm.
func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12am"
	case h < 12:
		return fmt.Sprintf("%dam", h)
	case h == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", h-12)
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
