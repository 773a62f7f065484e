package domain

// Category is the art form an artist offers. The set is closed; there is
// no extension mechanism.
type Category string

// All permitted categories.
const (
	CategoryPainting Category = "Painting"
	CategoryDancing  Category = "Dancing"
	CategorySinging  Category = "Singing"
	CategoryPoetry   Category = "Poetry"
)

// Categories lists every permitted category in display order.
func Categories() []Category {
	return []Category{CategoryPainting, CategoryDancing, CategorySinging, CategoryPoetry}
}

// Valid reports whether the category is one of the permitted values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPainting, CategoryDancing, CategorySinging, CategoryPoetry:
		return true
	}
	return false
}

// Location is one of the cities the directory covers. The set is closed.
type Location string

// All permitted locations.
const (
	LocationPune      Location = "Pune"
	LocationMumbai    Location = "Mumbai"
	LocationDelhi     Location = "Delhi"
	LocationKolkata   Location = "Kolkata"
	LocationHyderabad Location = "Hyderabad"
)

// Locations lists every permitted location in display order.
func Locations() []Location {
	return []Location{LocationPune, LocationMumbai, LocationDelhi, LocationKolkata, LocationHyderabad}
}

// Valid reports whether the location is one of the permitted cities.
func (l Location) Valid() bool {
	switch l {
	case LocationPune, LocationMumbai, LocationDelhi, LocationKolkata, LocationHyderabad:
		return true
	}
	return false
}

// UserType distinguishes plain accounts from service-providing artist
// accounts.
type UserType string

// The two permitted account types.
const (
	UserTypeUser   UserType = "User"
	UserTypeArtist UserType = "Artist"
)

// Valid reports whether the user type is one of the permitted values.
func (t UserType) Valid() bool {
	return t == UserTypeUser || t == UserTypeArtist
}

// Rating is an artist's rating on a 1-5 scale. The zero value means the
// rating has not been set yet; it sorts below every explicit rating.
type Rating int

// RatingUnset is the zero value of Rating, used for artists that have not
// been rated.
const RatingUnset Rating = 0

// Valid reports whether the rating is unset or within the 1-5 scale.
func (r Rating) Valid() bool {
	return r >= RatingUnset && r <= 5
}

// IsSet reports whether an explicit rating has been assigned.
func (r Rating) IsSet() bool {
	return r != RatingUnset
}
