package helpers

import "database/sql"

// GetContentNullString converts a string value to sql.NullString.
// Empty strings become NULL so that optional text columns stay NULL
// instead of storing "".
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullInt64 converts an int64 to sql.NullInt64, treating 0 as NULL.
// Used for optional foreign keys bound from JSON where absence is 0.
func GetNullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
