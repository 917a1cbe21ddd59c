package models

// Category classifies packages and/or tours for public filtering.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

const (
	CategoryTypeTour    = "tour"
	CategoryTypePackage = "package"
	CategoryTypeBoth    = "both"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ValidCategoryType reports whether t is an accepted category type.
func ValidCategoryType(t string) bool {
	return t == CategoryTypeTour || t == CategoryTypePackage || t == CategoryTypeBoth
}

// ValidStatus reports whether s is an accepted visibility status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
