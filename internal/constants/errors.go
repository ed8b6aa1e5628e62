package constants

import "errors"

// Hard failures from the catalog fetch layer. An empty or unreachable
// store must surface as one of these, never as an empty catalog: pages
// distinguish "nothing matched your filters" from "the system cannot
// produce a catalog at all".
var (
	ErrNoRoutes   = errors.New("no routes available")
	ErrNoAircraft = errors.New("no aircraft available")
)
