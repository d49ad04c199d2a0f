// Package statement pairs a parameterized SQL string with its ordered
// parameter list and the derived debug rendering.
package statement

import (
	"context"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/sqldb"
)

// Statement is the immutable result of a completed builder: parameterized
// SQL, its parameters in placeholder order, and a debug rendering with the
// values inlined.
type Statement struct {
	preparedSQL string
	params      []param.Parameter
	debugSQL    string
}

// New validates that the '?' count in sql matches len(params) and derives
// the debug SQL. This is the single validation gate for the whole builder
// pipeline; the builders themselves never count placeholders.
func New(sql string, params []param.Parameter) (*Statement, error) {
	debugSQL, err := DebugSQL(sql, params)
	if err != nil {
		return nil, err
	}
	ps := make([]param.Parameter, len(params))
	copy(ps, params)
	return &Statement{
		preparedSQL: sql,
		params:      ps,
		debugSQL:    debugSQL,
	}, nil
}

// PreparedSQL returns the parameterized SQL exactly as given to New; it is
// validated, never rewritten.
func (s *Statement) PreparedSQL() string {
	return s.preparedSQL
}

// DebugSQL returns the one-line rendering with parameter values inlined.
// For logging only; never execute or trust it.
func (s *Statement) DebugSQL() string {
	return s.debugSQL
}

// Params returns the parameters in bind order.
func (s *Statement) Params() []param.Parameter {
	ps := make([]param.Parameter, len(s.params))
	copy(ps, s.params)
	return ps
}

// Bind sets every parameter onto stmt at its 1-based index, in order, and
// hands the statement back for chaining.
func (s *Statement) Bind(stmt sqldb.Stmt) (sqldb.Stmt, error) {
	for i, p := range s.params {
		if err := p.BindTo(stmt, i+1); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// Prepare acquires a prepared statement from conn and binds all parameters
// onto it. The statement is closed again if binding fails.
func (s *Statement) Prepare(ctx context.Context, conn sqldb.Conn) (sqldb.Stmt, error) {
	stmt, err := conn.Prepare(ctx, s.preparedSQL)
	if err != nil {
		return nil, err
	}
	if _, err := s.Bind(stmt); err != nil {
		_ = stmt.Close()
		return nil, err
	}
	return stmt, nil
}
