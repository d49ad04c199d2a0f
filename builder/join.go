package builder

import "github.com/zeptools/sqlbuild/condition"

type joinType string

const (
	joinLeft  joinType = "LEFT"
	joinInner joinType = "INNER"
)

// joinData holds one JOIN clause of a select.
type joinData struct {
	typ   joinType
	table string
	on    condition.Condition
}

func (j joinData) sql() string {
	return string(j.typ) + " JOIN " + j.table + " ON " + j.on.SQL()
}
