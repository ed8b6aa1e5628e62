package static

import "strings"

// AirportInfo is the static coordinate record for a served city.
type AirportInfo struct {
	Code        string
	Country     string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

// airportsByCity maps lowercased city names to the airport used for
// charter quotes out of that city. Immutable for the process lifetime;
// the backing data changes only with a deploy.
var airportsByCity = map[string]AirportInfo{
	// Americas
	"new york":      {"JFK", "United States", "US", 40.6413, -73.7781},
	"miami":         {"MIA", "United States", "US", 25.7959, -80.2870},
	"los angeles":   {"LAX", "United States", "US", 33.9416, -118.4085},
	"las vegas":     {"LAS", "United States", "US", 36.0840, -115.1537},
	"chicago":       {"ORD", "United States", "US", 41.9742, -87.9073},
	"dallas":        {"DFW", "United States", "US", 32.8998, -97.0403},
	"houston":       {"IAH", "United States", "US", 29.9902, -95.3368},
	"san francisco": {"SFO", "United States", "US", 37.6213, -122.3790},
	"boston":        {"BOS", "United States", "US", 42.3656, -71.0096},
	"washington":    {"IAD", "United States", "US", 38.9531, -77.4565},
	"aspen":         {"ASE", "United States", "US", 39.2232, -106.8688},
	"seattle":       {"SEA", "United States", "US", 47.4502, -122.3088},
	"denver":        {"DEN", "United States", "US", 39.8561, -104.6737},
	"atlanta":       {"ATL", "United States", "US", 33.6407, -84.4277},
	"orlando":       {"MCO", "United States", "US", 28.4312, -81.3081},
	"toronto":       {"YYZ", "Canada", "CA", 43.6777, -79.6248},
	"mexico city":   {"MEX", "Mexico", "MX", 19.4363, -99.0721},

	// Europe
	"london":            {"LTN", "United Kingdom", "GB", 51.8747, -0.3683},
	"paris":             {"LBG", "France", "FR", 48.9694, 2.4414},
	"geneva":            {"GVA", "Switzerland", "CH", 46.2381, 6.1090},
	"zurich":            {"ZRH", "Switzerland", "CH", 47.4647, 8.5492},
	"nice":              {"NCE", "France", "FR", 43.6584, 7.2159},
	"cannes":            {"CEQ", "France", "FR", 43.5420, 6.9538},
	"milan":             {"LIN", "Italy", "IT", 45.4494, 9.2783},
	"rome":              {"FCO", "Italy", "IT", 41.8003, 12.2389},
	"madrid":            {"MAD", "Spain", "ES", 40.4983, -3.5676},
	"barcelona":         {"BCN", "Spain", "ES", 41.2974, 2.0833},
	"ibiza":             {"IBZ", "Spain", "ES", 38.8729, 1.3731},
	"palma de mallorca": {"PMI", "Spain", "ES", 39.5517, 2.7388},
	"lisbon":            {"LIS", "Portugal", "PT", 38.7742, -9.1342},
	"amsterdam":         {"AMS", "Netherlands", "NL", 52.3105, 4.7683},
	"brussels":          {"BRU", "Belgium", "BE", 50.9010, 4.4856},
	"frankfurt":         {"FRA", "Germany", "DE", 50.0379, 8.5622},
	"munich":            {"MUC", "Germany", "DE", 48.3538, 11.7861},
	"berlin":            {"BER", "Germany", "DE", 52.3667, 13.5033},
	"vienna":            {"VIE", "Austria", "AT", 48.1103, 16.5697},
	"prague":            {"PRG", "Czech Republic", "CZ", 50.1008, 14.2632},
	"athens":            {"ATH", "Greece", "GR", 37.9364, 23.9445},
	"mykonos":           {"JMK", "Greece", "GR", 37.4351, 25.3481},
	"istanbul":          {"IST", "Turkey", "TR", 41.2753, 28.7519},
	"moscow":            {"VKO", "Russia", "RU", 55.5915, 37.2615},

	// Middle East
	"dubai":     {"DXB", "United Arab Emirates", "AE", 25.2532, 55.3657},
	"abu dhabi": {"AUH", "United Arab Emirates", "AE", 24.4330, 54.6511},
	"doha":      {"DOH", "Qatar", "QA", 25.2731, 51.6081},
	"riyadh":    {"RUH", "Saudi Arabia", "SA", 24.9576, 46.6988},
}

// cityAliases papers over the name mismatches between the routes table
// and the coordinate table.
var cityAliases = map[string]string{
	"new york city":   "new york",
	"nyc":             "new york",
	"washington d.c.": "washington",
	"washington dc":   "washington",
	"monaco":          "nice",
	"mallorca":        "palma de mallorca",
	"côte d'azur":     "nice",
}

// AirportForCity resolves a city name (case-insensitive, alias-aware)
// to its airport record. The second return is false when the city is
// not served; callers skip such routes.
func AirportForCity(city string) (AirportInfo, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if alias, ok := cityAliases[key]; ok {
		key = alias
	}
	info, ok := airportsByCity[key]
	return info, ok
}
