package models

// Side is the geographic half of the city a district belongs to
type Side string

// Side constants
const (
	SideAnadolu Side = "Anadolu"
	SideAvrupa  Side = "Avrupa"
)

// SchoolType is the school level
type SchoolType string

// SchoolType constants
const (
	SchoolTypeOrta SchoolType = "Orta"
	SchoolTypeLise SchoolType = "Lise"
)

// ValidSide reports whether s is one of the two known sides
func ValidSide(s string) bool {
	return s == string(SideAnadolu) || s == string(SideAvrupa)
}

// ValidSchoolType reports whether t is one of the two known school levels
func ValidSchoolType(t string) bool {
	return t == string(SchoolTypeOrta) || t == string(SchoolTypeLise)
}
