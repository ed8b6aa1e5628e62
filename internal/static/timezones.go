package static

import "strings"

const defaultTimezone = "UTC"

var timezonesByCity = map[string]string{
	"new york":      "America/New_York",
	"miami":         "America/New_York",
	"boston":        "America/New_York",
	"washington":    "America/New_York",
	"atlanta":       "America/New_York",
	"orlando":       "America/New_York",
	"toronto":       "America/Toronto",
	"chicago":       "America/Chicago",
	"dallas":        "America/Chicago",
	"houston":       "America/Chicago",
	"denver":        "America/Denver",
	"aspen":         "America/Denver",
	"los angeles":   "America/Los_Angeles",
	"las vegas":     "America/Los_Angeles",
	"san francisco": "America/Los_Angeles",
	"seattle":       "America/Los_Angeles",
	"mexico city":   "America/Mexico_City",

	"london":            "Europe/London",
	"paris":             "Europe/Paris",
	"nice":              "Europe/Paris",
	"cannes":            "Europe/Paris",
	"geneva":            "Europe/Zurich",
	"zurich":            "Europe/Zurich",
	"milan":             "Europe/Rome",
	"rome":              "Europe/Rome",
	"madrid":            "Europe/Madrid",
	"barcelona":         "Europe/Madrid",
	"ibiza":             "Europe/Madrid",
	"palma de mallorca": "Europe/Madrid",
	"lisbon":            "Europe/Lisbon",
	"amsterdam":         "Europe/Amsterdam",
	"brussels":          "Europe/Brussels",
	"frankfurt":         "Europe/Berlin",
	"munich":            "Europe/Berlin",
	"berlin":            "Europe/Berlin",
	"vienna":            "Europe/Vienna",
	"prague":            "Europe/Prague",
	"athens":            "Europe/Athens",
	"mykonos":           "Europe/Athens",
	"istanbul":          "Europe/Istanbul",
	"moscow":            "Europe/Moscow",

	"dubai":     "Asia/Dubai",
	"abu dhabi": "Asia/Dubai",
	"doha":      "Asia/Qatar",
	"riyadh":    "Asia/Riyadh",
}

// TimezoneForCity returns the IANA timezone for a city, defaulting to
// UTC for anything unlisted.
func TimezoneForCity(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	if alias, ok := cityAliases[key]; ok {
		key = alias
	}
	if tz, ok := timezonesByCity[key]; ok {
		return tz
	}
	return defaultTimezone
}
