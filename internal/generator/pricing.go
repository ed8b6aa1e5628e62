package generator

import (
	"math"
	"strings"
)

const (
	emptyLegPriceFloor   = 3500
	jetSharingSeatFloor  = 300
	fallbackCategoryName = ""
)

type feeRow struct {
	Base    float64
	PerMile float64
}

// Empty-leg fees: whole-aircraft base fee plus per-statute-mile rate,
// keyed by canonical aircraft category.
var emptyLegFees = map[string]feeRow{
	"Turboprop":            {Base: 3500, PerMile: 4.5},
	"Very Light":           {Base: 4500, PerMile: 5.5},
	"Light":                {Base: 5500, PerMile: 6.5},
	"Midsize":              {Base: 8000, PerMile: 8.0},
	"Super-mid":            {Base: 10000, PerMile: 9.5},
	"Heavy":                {Base: 14000, PerMile: 12.0},
	"Ultra Long":           {Base: 18000, PerMile: 14.0},
	"VIP Airliner":         {Base: 25000, PerMile: 18.0},
	fallbackCategoryName:   {Base: 6000, PerMile: 7.0},
}

// Jet-sharing fees: per-seat base plus per-nautical-mile rate.
var jetSharingFees = map[string]feeRow{
	"Turboprop":            {Base: 300, PerMile: 0.4},
	"Very Light":           {Base: 400, PerMile: 0.5},
	"Light":                {Base: 500, PerMile: 0.6},
	"Midsize":              {Base: 700, PerMile: 0.8},
	"Super-mid":            {Base: 900, PerMile: 0.9},
	"Heavy":                {Base: 1200, PerMile: 1.1},
	"Ultra Long":           {Base: 1500, PerMile: 1.3},
	"VIP Airliner":         {Base: 1800, PerMile: 1.5},
	fallbackCategoryName:   {Base: 600, PerMile: 0.7},
}

// categoryAliases folds the longer marketing names onto the canonical
// table keys.
var categoryAliases = map[string]string{
	"super midsize":    "Super-mid",
	"super-mid":        "Super-mid",
	"ultra long range": "Ultra Long",
	"ultra long":       "Ultra Long",
}

// CanonicalCategory maps an aircraft category string to the key used by
// the fee and seat tables. Unknown categories map to the fallback row.
func CanonicalCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	lower := strings.ToLower(trimmed)
	if alias, ok := categoryAliases[lower]; ok {
		return alias
	}
	for key := range emptyLegFees {
		if key != fallbackCategoryName && strings.EqualFold(key, trimmed) {
			return key
		}
	}
	return fallbackCategoryName
}

// EmptyLegPrice computes a whole-aircraft empty-leg price: table fee by
// category and distance, scaled by a random factor in [0.8, 1.2) drawn
// from the shared generator, floored at $3,500. The draw happens here
// so the synthesis loop dictates its position in the stream.
func EmptyLegPrice(category string, distanceMiles float64, rng *Rand) float64 {
	row := emptyLegFees[CanonicalCategory(category)]
	price := (row.Base + row.PerMile*distanceMiles) * rng.Range(0.8, 1.2)
	return math.Max(math.Round(price), emptyLegPriceFloor)
}

// JetSharingSeatPrice computes a per-seat price with a factor in
// [0.85, 1.15) and a $300 floor.
func JetSharingSeatPrice(category string, distanceNM float64, rng *Rand) float64 {
	row := jetSharingFees[CanonicalCategory(category)]
	price := (row.Base + row.PerMile*distanceNM) * rng.Range(0.85, 1.15)
	return math.Max(math.Round(price), jetSharingSeatFloor)
}
