package nullable

import "database/sql"

// Int in `nullable` package
// implements: sql.Scanner by embedding sql.NullInt64
type Int struct {
	sql.NullInt64
}

func IntOf(v int64) Int {
	return Int{sql.NullInt64{Int64: v, Valid: true}}
}

func (n Int) ForceValue() int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

func (n Int) IsNil() bool {
	return !n.Valid
}

// Ptr returns a pointer to the value, or nil when the value is absent.
func (n Int) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
