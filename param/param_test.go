package param_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/nullable"
	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/sqldb"
)

// call records one setter invocation on the fake statement.
type call struct {
	method string
	index  int
	value  any
}

// fakeStmt records every setter call for assertion.
type fakeStmt struct {
	calls []call
}

var _ sqldb.Stmt = (*fakeStmt)(nil)

func (f *fakeStmt) record(method string, index int, value any) error {
	f.calls = append(f.calls, call{method: method, index: index, value: value})
	return nil
}

func (f *fakeStmt) SetInt(index int, v int32) error      { return f.record("SetInt", index, v) }
func (f *fakeStmt) SetLong(index int, v int64) error     { return f.record("SetLong", index, v) }
func (f *fakeStmt) SetDouble(index int, v float64) error { return f.record("SetDouble", index, v) }
func (f *fakeStmt) SetNull(index int, code sqldb.TypeCode) error {
	return f.record("SetNull", index, code)
}
func (f *fakeStmt) SetString(index int, v *string) error  { return f.record("SetString", index, v) }
func (f *fakeStmt) SetDate(index int, v *time.Time) error { return f.record("SetDate", index, v) }
func (f *fakeStmt) SetDateTime(index int, v *time.Time) error {
	return f.record("SetDateTime", index, v)
}
func (f *fakeStmt) SetDecimal(index int, v *decimal.Decimal) error {
	return f.record("SetDecimal", index, v)
}
func (f *fakeStmt) AddBatch() error { return f.record("AddBatch", 0, nil) }
func (f *fakeStmt) ExecuteBatch(_ context.Context) ([]int64, error) {
	return nil, f.record("ExecuteBatch", 0, nil)
}
func (f *fakeStmt) Exec(_ context.Context) (sqldb.Result, error) {
	return nil, f.record("Exec", 0, nil)
}
func (f *fakeStmt) Close() error { return f.record("Close", 0, nil) }

func (f *fakeStmt) last(t *testing.T) call {
	t.Helper()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func TestBindToDispatchesByKind(t *testing.T) {
	stmt := &fakeStmt{}
	d := time.Date(2024, 1, 31, 14, 23, 56, 0, time.UTC)
	dec := decimal.RequireFromString("12.34")

	require.NoError(t, param.Int(42).BindTo(stmt, 1))
	require.Equal(t, call{"SetInt", 1, int32(42)}, stmt.last(t))

	require.NoError(t, param.Long(1<<40).BindTo(stmt, 2))
	require.Equal(t, call{"SetLong", 2, int64(1 << 40)}, stmt.last(t))

	require.NoError(t, param.Double(1.5).BindTo(stmt, 3))
	require.Equal(t, call{"SetDouble", 3, 1.5}, stmt.last(t))

	require.NoError(t, param.String("abc").BindTo(stmt, 4))
	last := stmt.last(t)
	require.Equal(t, "SetString", last.method)
	require.Equal(t, "abc", *last.value.(*string))

	require.NoError(t, param.Date(d).BindTo(stmt, 5))
	last = stmt.last(t)
	require.Equal(t, "SetDate", last.method)
	require.Equal(t, d, *last.value.(*time.Time))

	require.NoError(t, param.DateTime(d).BindTo(stmt, 6))
	require.Equal(t, "SetDateTime", stmt.last(t).method)

	require.NoError(t, param.Decimal(dec).BindTo(stmt, 7))
	last = stmt.last(t)
	require.Equal(t, "SetDecimal", last.method)
	require.True(t, dec.Equal(*last.value.(*decimal.Decimal)))
}

func TestBindToNumericNullsUseTypedSetNull(t *testing.T) {
	stmt := &fakeStmt{}

	require.NoError(t, param.IntPtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetNull", 1, sqldb.TypeInteger}, stmt.last(t))

	require.NoError(t, param.LongPtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetNull", 1, sqldb.TypeBigInt}, stmt.last(t))

	require.NoError(t, param.DoublePtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetNull", 1, sqldb.TypeDouble}, stmt.last(t))
}

func TestBindToNonNumericNullsPassNilPointer(t *testing.T) {
	stmt := &fakeStmt{}

	require.NoError(t, param.StringPtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetString", 1, (*string)(nil)}, stmt.last(t))

	require.NoError(t, param.DatePtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetDate", 1, (*time.Time)(nil)}, stmt.last(t))

	require.NoError(t, param.DateTimePtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetDateTime", 1, (*time.Time)(nil)}, stmt.last(t))

	require.NoError(t, param.DecimalPtr(nil).BindTo(stmt, 1))
	require.Equal(t, call{"SetDecimal", 1, (*decimal.Decimal)(nil)}, stmt.last(t))
}

func TestBindToRejectsBadArgs(t *testing.T) {
	require.Error(t, param.Int(1).BindTo(nil, 1))
	require.Error(t, param.Int(1).BindTo(&fakeStmt{}, 0))
	require.Error(t, param.Int(1).BindTo(&fakeStmt{}, -3))
}

func TestBindToZeroValueParameter(t *testing.T) {
	var p param.Parameter
	err := p.BindTo(&fakeStmt{}, 1)
	require.Error(t, err)
}

func TestDebugSQLLiterals(t *testing.T) {
	d := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	ts := time.Date(2024, 3, 20, 14, 23, 56, 0, time.UTC)

	require.Equal(t, "42", param.Int(42).DebugSQL())
	require.Equal(t, "-7", param.Int(-7).DebugSQL())
	require.Equal(t, "1099511627776", param.Long(1<<40).DebugSQL())
	require.Equal(t, "1.5", param.Double(1.5).DebugSQL())
	require.Equal(t, "1", param.Double(1.0).DebugSQL())
	require.Equal(t, "'abc'", param.String("abc").DebugSQL())
	require.Equal(t, "''", param.String("").DebugSQL())
	require.Equal(t, "'2024-01-31'", param.Date(d).DebugSQL())
	require.Equal(t, "'2024-03-20 14:23:56'", param.DateTime(ts).DebugSQL())
	require.Equal(t, "12.34", param.Decimal(decimal.RequireFromString("12.34")).DebugSQL())
}

func TestDebugSQLDateDropsTimeOfDay(t *testing.T) {
	d := time.Date(2024, 1, 31, 23, 59, 58, 0, time.UTC)
	require.Equal(t, "'2024-01-31'", param.Date(d).DebugSQL())
}

func TestDebugSQLStringIsNotEscaped(t *testing.T) {
	// Documentation-only rendering; embedded quotes pass through verbatim.
	require.Equal(t, "'o'brien'", param.String("o'brien").DebugSQL())
}

func TestDebugSQLNulls(t *testing.T) {
	require.Equal(t, "NULL", param.IntPtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.LongPtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.DoublePtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.StringPtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.DatePtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.DateTimePtr(nil).DebugSQL())
	require.Equal(t, "NULL", param.DecimalPtr(nil).DebugSQL())
}

func TestPtrFactoriesWithValues(t *testing.T) {
	i := int32(5)
	require.Equal(t, "5", param.IntPtr(&i).DebugSQL())
	require.False(t, param.IntPtr(&i).IsNull())
	require.True(t, param.IntPtr(nil).IsNull())
}

func TestNullableAdapters(t *testing.T) {
	require.Equal(t, "7", param.FromNullableInt(nullable.IntOf(7)).DebugSQL())
	require.Equal(t, "NULL", param.FromNullableInt(nullable.Int{}).DebugSQL())

	require.Equal(t, "'x'", param.FromNullableString(nullable.StringOf("x")).DebugSQL())
	require.Equal(t, "NULL", param.FromNullableString(nullable.String{}).DebugSQL())

	require.Equal(t, "2.5", param.FromNullableFloat(nullable.FloatOf(2.5)).DebugSQL())

	ts := time.Date(2024, 3, 20, 14, 23, 56, 0, time.UTC)
	require.Equal(t, "'2024-03-20 14:23:56'", param.FromNullableTime(nullable.TimeOf(ts)).DebugSQL())
	require.Equal(t, "NULL", param.FromNullableTime(nullable.Time{}).DebugSQL())
}

func TestListHelpers(t *testing.T) {
	ps := param.Ints([]int32{1, 2, 3})
	require.Len(t, ps, 3)
	require.Equal(t, "2", ps[1].DebugSQL())

	ps = param.Strings([]string{"a", "b"})
	require.Len(t, ps, 2)
	require.Equal(t, "'b'", ps[1].DebugSQL())

	type row struct{ name string }
	ps = param.Map([]row{{"x"}, {"y"}}, func(r row) param.Parameter {
		return param.String(r.name)
	})
	require.Len(t, ps, 2)
	require.Equal(t, "'x'", ps[0].DebugSQL())
}
