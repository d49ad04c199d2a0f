package param

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zeptools/sqlbuild/nullable"
	"github.com/zeptools/sqlbuild/sqldb"
)

// Kind is the closed set of bindable value kinds.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindLong
	KindDouble
	KindString
	KindDate
	KindDateTime
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindDecimal:
		return "decimal"
	}
	return "invalid"
}

// Parameter holds one typed, nullable bind value. It is immutable after
// construction and safe to share. Consumers only ever call BindTo and
// DebugSQL; they never inspect the kind themselves.
type Parameter struct {
	kind  Kind
	valid bool // false -> NULL

	i32 int32
	i64 int64
	f64 float64
	str string
	t   time.Time
	dec decimal.Decimal
}

// ======================= Factories =======================

func Int(v int32) Parameter {
	return Parameter{kind: KindInt, valid: true, i32: v}
}

// IntPtr accepts nil as SQL NULL.
func IntPtr(v *int32) Parameter {
	if v == nil {
		return Parameter{kind: KindInt}
	}
	return Int(*v)
}

func Long(v int64) Parameter {
	return Parameter{kind: KindLong, valid: true, i64: v}
}

// LongPtr accepts nil as SQL NULL.
func LongPtr(v *int64) Parameter {
	if v == nil {
		return Parameter{kind: KindLong}
	}
	return Long(*v)
}

func Double(v float64) Parameter {
	return Parameter{kind: KindDouble, valid: true, f64: v}
}

// DoublePtr accepts nil as SQL NULL.
func DoublePtr(v *float64) Parameter {
	if v == nil {
		return Parameter{kind: KindDouble}
	}
	return Double(*v)
}

func String(v string) Parameter {
	return Parameter{kind: KindString, valid: true, str: v}
}

// StringPtr accepts nil as SQL NULL.
func StringPtr(v *string) Parameter {
	if v == nil {
		return Parameter{kind: KindString}
	}
	return String(*v)
}

// Date keeps only the calendar date of v; the time of day is ignored when
// rendering, and binding passes v through unchanged.
func Date(v time.Time) Parameter {
	return Parameter{kind: KindDate, valid: true, t: v}
}

// DatePtr accepts nil as SQL NULL.
func DatePtr(v *time.Time) Parameter {
	if v == nil {
		return Parameter{kind: KindDate}
	}
	return Date(*v)
}

func DateTime(v time.Time) Parameter {
	return Parameter{kind: KindDateTime, valid: true, t: v}
}

// DateTimePtr accepts nil as SQL NULL.
func DateTimePtr(v *time.Time) Parameter {
	if v == nil {
		return Parameter{kind: KindDateTime}
	}
	return DateTime(*v)
}

func Decimal(v decimal.Decimal) Parameter {
	return Parameter{kind: KindDecimal, valid: true, dec: v}
}

// DecimalPtr accepts nil as SQL NULL.
func DecimalPtr(v *decimal.Decimal) Parameter {
	if v == nil {
		return Parameter{kind: KindDecimal}
	}
	return Decimal(*v)
}

// ================== Nullable Adapters ====================

func FromNullableInt(n nullable.Int) Parameter {
	return LongPtr(n.Ptr())
}

func FromNullableFloat(n nullable.Float) Parameter {
	return DoublePtr(n.Ptr())
}

func FromNullableString(n nullable.String) Parameter {
	return StringPtr(n.Ptr())
}

func FromNullableTime(n nullable.Time) Parameter {
	return DateTimePtr(n.Ptr())
}

// ======================= Operations =======================

func (p Parameter) Kind() Kind {
	return p.kind
}

// IsNull reports whether the payload is absent.
func (p Parameter) IsNull() bool {
	return !p.valid
}

// BindTo sets this parameter at the 1-based index of stmt.
//
// Numeric kinds holding NULL go through the typed-null path, since their
// ordinary setters cannot carry an absent value. All other kinds pass a nil
// pointer through their ordinary setter.
func (p Parameter) BindTo(stmt sqldb.Stmt, index int) error {
	if stmt == nil {
		return fmt.Errorf("statement cannot be nil")
	}
	if index <= 0 {
		return fmt.Errorf("invalid index: %d", index)
	}

	switch p.kind {
	case KindInt:
		if !p.valid {
			return stmt.SetNull(index, sqldb.TypeInteger)
		}
		return stmt.SetInt(index, p.i32)
	case KindLong:
		if !p.valid {
			return stmt.SetNull(index, sqldb.TypeBigInt)
		}
		return stmt.SetLong(index, p.i64)
	case KindDouble:
		if !p.valid {
			return stmt.SetNull(index, sqldb.TypeDouble)
		}
		return stmt.SetDouble(index, p.f64)
	case KindString:
		if !p.valid {
			return stmt.SetString(index, nil)
		}
		return stmt.SetString(index, &p.str)
	case KindDate:
		if !p.valid {
			return stmt.SetDate(index, nil)
		}
		return stmt.SetDate(index, &p.t)
	case KindDateTime:
		if !p.valid {
			return stmt.SetDateTime(index, nil)
		}
		return stmt.SetDateTime(index, &p.t)
	case KindDecimal:
		if !p.valid {
			return stmt.SetDecimal(index, nil)
		}
		return stmt.SetDecimal(index, &p.dec)
	}
	// Only reachable through a zero-value Parameter.
	return fmt.Errorf("cannot bind parameter with kind %s", p.kind)
}

// DebugSQL renders the value as inline SQL literal text for logging.
//
// Strings are single-quoted with NO escaping of embedded quotes; the output
// is documentation-only and must never be treated as injection-safe. Dates
// render as '2006-01-02' and datetimes as '2006-01-02 15:04:05'.
func (p Parameter) DebugSQL() string {
	if !p.valid {
		return "NULL"
	}

	switch p.kind {
	case KindInt:
		return strconv.FormatInt(int64(p.i32), 10)
	case KindLong:
		return strconv.FormatInt(p.i64, 10)
	case KindDouble:
		return strconv.FormatFloat(p.f64, 'f', -1, 64)
	case KindString:
		return "'" + p.str + "'"
	case KindDate:
		return "'" + p.t.Format("2006-01-02") + "'"
	case KindDateTime:
		return "'" + p.t.Format("2006-01-02 15:04:05") + "'"
	case KindDecimal:
		return p.dec.String()
	}
	// Only reachable through a zero-value Parameter.
	return "NULL"
}
