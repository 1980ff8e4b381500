// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"fmt"
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// categoryWords maps category name fragments to the words used in the year
// summary. The first matching fragment wins.
var categoryWords = []struct {
	fragment string
	word     string
}{
	{"coffee", "coffee"},
	{"café", "coffee"},
	{"cafe", "coffee"},
	{"tea room", "coffee"},
	{"restaurant", "good food"},
	{"food", "good food"},
	{"diner", "good food"},
	{"bistro", "good food"},
	{"eatery", "good food"},
	{"bakery", "good food"},
	{"pizza", "good food"},
	{"burger", "good food"},
	{"sushi", "good food"},
	{"taco", "good food"},
	{"bar", "nights out"},
	{"pub", "nights out"},
	{"brewery", "craft beer"},
	{"winery", "wine"},
	{"cocktail", "nights out"},
	{"gym", "fitness"},
	{"fitness", "fitness"},
	{"yoga", "wellness"},
	{"spa", "wellness"},
	{"park", "the outdoors"},
	{"trail", "the outdoors"},
	{"beach", "the outdoors"},
	{"garden", "the outdoors"},
	{"hotel", "travel"},
	{"airport", "travel"},
	{"train", "travel"},
	{"shop", "shopping"},
	{"store", "shopping"},
	{"mall", "shopping"},
	{"market", "shopping"},
	{"grocery", "errands"},
	{"theater", "entertainment"},
	{"cinema", "movies"},
	{"movie", "movies"},
	{"museum", "culture"},
	{"gallery", "culture"},
	{"concert", "live music"},
	{"music venue", "live music"},
	{"office", "work"},
	{"coworking", "work"},
}

// summarySkip lists category fragments never mentioned in the summary.
var summarySkip = []string{
	"spiritual", "church", "religious", "school", "education",
	"bank", "atm", "gas", "parking", "automotive", "medical",
	"doctor", "dentist", "hospital", "pharmacy", "laundry",
	"dry cleaner", "post office", "government",
}

// yearSummary builds the one-sentence description of the year, for example
// "A year of coffee and good food, based in Austin with adventures in Denver, fueled by a 42-day streak."
func yearSummary(report *models.Report, cats *counter) string {
	parts := []string{opening(report, cats)}

	if len(report.TopCities) > 0 {
		home := cityName(report.TopCities[0].Name)
		var others []string
		for _, c := range report.TopCities[1:min(4, len(report.TopCities))] {
			if name := cityName(c.Name); name != home {
				others = append(others, name)
			}
		}
		switch len(others) {
		case 0:
			parts = append(parts, "exploring "+home)
		case 1:
			parts = append(parts, fmt.Sprintf("based in %s with adventures in %s", home, others[0]))
		default:
			parts = append(parts, fmt.Sprintf("based in %s with adventures in %s and %s", home, others[0], others[1]))
		}
	}

	switch {
	case report.LongestStreakDays >= 30:
		parts = append(parts, fmt.Sprintf("fueled by a %d-day streak", report.LongestStreakDays))
	case report.CrewPercentage >= 60:
		parts = append(parts, "shared with loved ones")
	case report.CrewPercentage <= 25 && report.SoloCheckins > 50:
		parts = append(parts, "often flying solo")
	}

	return strings.Join(parts, ", ") + "."
}

// opening picks up to two words from the top six categories.
func opening(report *models.Report, cats *counter) string {
	var words []string
	for _, item := range cats.top(6) {
		name := strings.ToLower(item.Name)
		if containsAny(name, summarySkip) {
			continue
		}
		for _, cw := range categoryWords {
			if strings.Contains(name, cw.fragment) {
				if !containsString(words, cw.word) {
					words = append(words, cw.word)
				}
				break
			}
		}
		if len(words) >= 2 {
			break
		}
	}

	if len(words) == 0 {
		return fmt.Sprintf("A year of %d check-ins", report.TotalCheckins)
	}
	return "A year of " + strings.Join(words, " and ")
}

// shareableText is a short plain-text blurb for social posts.
func shareableText(report *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "My %d Swarm Wrapped:\n", report.Year)
	fmt.Fprintf(&b, "- %d check-ins at %d places\n", report.TotalCheckins, report.UniqueVenues)
	fmt.Fprintf(&b, "- %d cities in %d countries\n", report.UniqueCities, report.UniqueCountries)
	if report.LongestStreakDays > 1 {
		fmt.Fprintf(&b, "- %d-day check-in streak\n", report.LongestStreakDays)
	}
	if len(report.TopVenues) > 0 {
		fmt.Fprintf(&b, "- Top spot: %s\n", report.TopVenues[0].Name)
	}
	if report.Personality.Name != "" {
		fmt.Fprintf(&b, "- %s %s\n", report.Personality.Name, report.Personality.Emoji)
	}
	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
