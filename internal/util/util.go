// Package util holds pure text helpers for localized duration and
// distance rendering shared by the trip composer and the route history.
package util

import (
	"fmt"
	"strconv"
	"strings"
)

// subMinute is the sentinel shown for any duration under one minute. The
// canonical seconds value stays unrounded internally; only the display
// collapses to the sentinel.
const subMinute = "< 1分钟"

// FormatDurationText renders canonical seconds as localized whole
// minutes, truncated so totals always agree with the sum of displayed
// legs. Durations under 60 seconds render as the sub-minute sentinel.
func FormatDurationText(seconds float64) string {
	if seconds < 60 {
		return subMinute
	}

	return fmt.Sprintf("%d 分钟", int(seconds/60))
}

// FormatDistanceText renders canonical meters, switching to kilometers at
// one decimal place from 1000 m up.
func FormatDistanceText(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f 公里", meters/1000)
	}

	return fmt.Sprintf("%.0f 米", meters)
}

// FormatLegSummary renders one leg as "<duration>|<distance>".
func FormatLegSummary(durationSeconds, distanceMeters float64) string {
	return FormatDurationText(durationSeconds) + "|" + FormatDistanceText(distanceMeters)
}

// ParseDurationTextSeconds converts localized minute text back to seconds.
// The sub-minute sentinel contributes zero whole minutes. Unparseable text
// contributes zero; callers that need to distinguish should not round-trip
// through text in the first place.
func ParseDurationTextSeconds(text string) float64 {
	if strings.HasPrefix(strings.TrimSpace(text), "<") {
		return 0
	}

	digits := strings.Builder{}
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	minutes, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return float64(minutes) * 60
}

// ParseDistanceTextMeters converts localized distance text back to meters.
// Unparseable text contributes zero.
func ParseDistanceTextMeters(text string) float64 {
	text = strings.TrimSpace(text)

	if strings.Contains(text, "公里") {
		num := strings.TrimSpace(strings.ReplaceAll(text, "公里", ""))
		km, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}

		return km * 1000
	}

	num := strings.TrimSpace(strings.ReplaceAll(text, "米", ""))
	meters, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	return meters
}
