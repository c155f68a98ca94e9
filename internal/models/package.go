package models

// Category partitions the package list. Each category is stored as one
// document in the packages collection holding the ordered items array.
type Category string

const (
	CategoryTopDestinations Category = "top-destinations"
	CategoryBestDeals       Category = "best-deals"
	CategoryMostSearched    Category = "most-searched"
	CategoryCurated         Category = "curated"
	CategoryUmrah           Category = "umrah"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTopDestinations,
	CategoryBestDeals,
	CategoryMostSearched,
	CategoryCurated,
	CategoryUmrah,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PackageRecord is one element of a category's items array. It has no
// identity beyond its position in that array.
//
// Title/Name and Days/Duration are written in pairs with the same value for
// the public site, which still reads either field.
type PackageRecord struct {
	Title       string   `firestore:"title" json:"title"`
	Name        string   `firestore:"name" json:"name"`
	ImageURL    string   `firestore:"imageUrl" json:"imageUrl"`
	Days        string   `firestore:"days,omitempty" json:"days,omitempty"`
	Duration    string   `firestore:"duration,omitempty" json:"duration,omitempty"`
	Price       string   `firestore:"price,omitempty" json:"price,omitempty"`
	Location    string   `firestore:"location,omitempty" json:"location,omitempty"`
	Rating      string   `firestore:"rating,omitempty" json:"rating,omitempty"`
	Discount    string   `firestore:"discount,omitempty" json:"discount,omitempty"`
	Description string   `firestore:"description,omitempty" json:"description,omitempty"`
	Features    []string `firestore:"features,omitempty" json:"features,omitempty"`
}
