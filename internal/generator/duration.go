package generator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const defaultCruiseSpeedMph = 480

// Fallback when a stored duration label cannot be parsed at all.
const defaultDurationMinutes = 60

var (
	leadingIntRe   = regexp.MustCompile(`(\d+)`)
	hoursRe        = regexp.MustCompile(`(\d+)\s*h`)
	minuteRangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*m`)
	minutesRe      = regexp.MustCompile(`(\d+)\s*m`)
	unitNormalizer = strings.NewReplacer(
		"hours", "h", "hrs", "h", "hour", "h", "hr", "h",
		"minutes", "m", "mins", "m", "minute", "m", "min", "m",
	)
)

// EstimateDuration computes a flight duration label from distance and
// an aircraft's free-text speed descriptor (e.g. "528 mph cruise").
// The leading integer is taken as cruise speed; a tiered buffer covers
// taxi, climb and descent.
func EstimateDuration(distanceMiles float64, speedDescriptor string) string {
	speed := float64(defaultCruiseSpeedMph)
	if m := leadingIntRe.FindString(speedDescriptor); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v > 0 {
			speed = float64(v)
		}
	}

	hours := distanceMiles / speed
	switch {
	case distanceMiles < 500:
		hours += 0.5
	case distanceMiles < 2000:
		hours += 0.75
	default:
		hours += 1.0
	}

	totalMinutes := int(math.Round(hours * 60))
	return FormatDuration(totalMinutes)
}

// FormatDuration renders minutes as "Xh Ym", or bare "Ym" under an hour.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	h := totalMinutes / 60
	m := totalMinutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// NormalizeDuration applies cosmetic unit normalization to a stored
// duration label so "2 hours 30 minutes" and "2h 30m" render the same.
// It does not validate; unparseable labels are handled at parse time.
func NormalizeDuration(label string) string {
	s := unitNormalizer.Replace(strings.ToLower(strings.TrimSpace(label)))
	// Collapse "2 h" to "2h".
	s = strings.ReplaceAll(s, " h", "h")
	s = strings.ReplaceAll(s, " m", "m")
	return s
}

// ParseDurationMinutes converts a duration label to total minutes.
// Supported forms: "2h 15m", "45m", and ranges like "40-60m" which are
// averaged. Anything unparseable counts as 60 minutes rather than
// failing the listing.
func ParseDurationMinutes(label string) int {
	s := NormalizeDuration(label)

	total := 0
	matched := false

	if m := hoursRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			total += v * 60
			matched = true
		}
	}

	if m := minuteRangeRe.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			total += (lo + hi) / 2
			matched = true
		}
	} else {
		// Strip the hours part first so "2h 15m" does not re-match "2".
		rest := hoursRe.ReplaceAllString(s, "")
		if m := minutesRe.FindStringSubmatch(rest); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				total += v
				matched = true
			}
		}
	}

	if !matched {
		return defaultDurationMinutes
	}
	return total
}

// ArrivalTime adds a duration label to a "HH:MM" departure and returns
// the wrapped "HH:MM" arrival. Rollover past midnight wraps silently
// without carrying into the date.
func ArrivalTime(departure, durationLabel string) string {
	parts := strings.SplitN(departure, ":", 2)
	depH, depM := 0, 0
	if len(parts) == 2 {
		depH, _ = strconv.Atoi(parts[0])
		depM, _ = strconv.Atoi(parts[1])
	}

	total := depH*60 + depM + ParseDurationMinutes(durationLabel)
	total = ((total % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
