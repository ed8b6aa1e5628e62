package entities

// Aircraft is a read-only catalog record. Passengers, Range and Speed
// are free-text marketing descriptors ("8 passengers", "3,200 nm",
// "528 mph"); the generator regex-extracts what it needs from them.
type Aircraft struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Slug         string  `db:"slug" json:"slug"`
	Category     string  `db:"category" json:"category"`
	CategorySlug string  `db:"category_slug" json:"categorySlug"`
	Image        *string `db:"image" json:"image,omitempty"`
	Passengers   string  `db:"passengers" json:"passengers"`
	Range        string  `db:"range" json:"range"`
	Speed        string  `db:"speed" json:"speed"`
}
