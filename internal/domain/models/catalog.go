package models

// ItemKind distinguishes the two catalog tables. Packages and tours share the
// same shape; only the table and the public image directory differ.
type ItemKind string

const (
	KindPackage ItemKind = "package"
	KindTour    ItemKind = "tour"
)

// Table returns the backing table name for the kind.
func (k ItemKind) Table() string {
	if k == KindTour {
		return "tours"
	}
	return "packages"
}

// TravelItem is a sellable catalog row (a package or a tour).
type TravelItem struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	CategoryID       int64   `json:"category_id"`
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	DurationDays     int     `json:"duration_days"`
	Image            string  `json:"image"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`

	// Joined category fields, filled by list/detail queries.
	CategoryName string `json:"category_name,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
}
