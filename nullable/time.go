package nullable

import (
	"database/sql"
	"time"
)

// Time in `nullable` package
// implements: sql.Scanner by embedding sql.NullTime
type Time struct {
	sql.NullTime
}

func TimeOf(v time.Time) Time {
	return Time{sql.NullTime{Time: v, Valid: true}}
}

func (n Time) ForceValue() time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return n.Time
}

func (n Time) IsNil() bool {
	return !n.Valid
}

// Ptr returns a pointer to the value, or nil when the value is absent.
func (n Time) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	v := n.Time
	return &v
}
