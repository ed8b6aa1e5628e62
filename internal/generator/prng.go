package generator

import "time"

// DateSeed derives the catalog seed for a calendar day: YYYYMMDD as an
// integer, computed from the server's local date. Two requests on
// opposite sides of local midnight get different catalogs.
func DateSeed(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// SeedDate is the inverse of DateSeed. It reconstructs the local
// calendar day a seed was derived from, so that a listing id carrying
// yesterday's seed regenerates against yesterday's base date.
func SeedDate(seed int) time.Time {
	year := seed / 10000
	month := time.Month((seed / 100) % 100)
	day := seed % 100
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Rand is a small linear-congruential generator. It trades statistical
// quality for exact reproducibility: the same seed always yields the
// same stream, which is the whole point of the daily catalog. Callers
// create one Rand per generation run and thread it through every
// sub-computation; sub-routines must never create their own.
type Rand struct {
	state int64
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

func NewRand(seed int) *Rand {
	return &Rand{state: int64(seed) % lcgModulus}
}

// Float returns the next value in [0, 1).
func (r *Rand) Float() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// IntN returns an integer in [0, n). It always consumes exactly one
// draw, even for n == 1, keeping the stream aligned across call sites.
func (r *Rand) IntN(n int) int {
	f := r.Float()
	if n <= 0 {
		return 0
	}
	return int(f * float64(n))
}

// Range returns a value uniformly drawn from [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}
