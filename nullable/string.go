package nullable

import "database/sql"

// String in `nullable` package
// implements: sql.Scanner by embedding sql.NullString
type String struct {
	sql.NullString
}

func StringOf(v string) String {
	return String{sql.NullString{String: v, Valid: true}}
}

func (n String) ForceValue() string {
	if !n.Valid {
		return ""
	}
	return n.String
}

func (n String) IsNil() bool {
	return !n.Valid
}

// Ptr returns a pointer to the value, or nil when the value is absent.
func (n String) Ptr() *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
