package nullable

import "database/sql"

// Float in `nullable` package
// implements: sql.Scanner by embedding sql.NullFloat64
type Float struct {
	sql.NullFloat64
}

func FloatOf(v float64) Float {
	return Float{sql.NullFloat64{Float64: v, Valid: true}}
}

func (n Float) ForceValue() float64 {
	if !n.Valid {
		return 0
	}
	return n.Float64
}

func (n Float) IsNil() bool {
	return !n.Valid
}

// Ptr returns a pointer to the value, or nil when the value is absent.
func (n Float) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
