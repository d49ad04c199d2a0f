package batch

import (
	"context"
	"errors"
	"strings"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/sqldb"
	"github.com/zeptools/sqlbuild/statement"
)

// DefaultChunkSize bounds how many rows go into one batched execution
// unless SetChunkSize overrides it.
const DefaultChunkSize = 1000

// ErrNonPositiveChunkSize reports a chunk size <= 0.
var ErrNonPositiveChunkSize = errors.New("batch: chunk size must be positive")

// Runner executes a bulk insert in chunks. Configuration setters may be
// called freely before Execute; a Runner must not be shared across
// concurrent Execute calls. It holds no open resource between calls, so one
// Runner may be reused across connections and datasets.
type Runner[T any] struct {
	baseSQL     string // e.g. "INSERT INTO my_table (col1,col2) VALUES"
	tupleSQL    string // e.g. "(?,?)"
	suffixSQL   string // e.g. "ON DUPLICATE KEY UPDATE col2=VALUES(col2)"
	preparedSQL string

	retrievers []Retriever[T]

	chunkSize    int
	data         []T
	debugEnabled bool
	debugSQL     []string
}

func newRunner[T any](baseSQL, tupleSQL, suffixSQL string, retrievers []Retriever[T]) *Runner[T] {
	return &Runner[T]{
		baseSQL:     baseSQL,
		tupleSQL:    tupleSQL,
		suffixSQL:   suffixSQL,
		preparedSQL: joinSQL(baseSQL, tupleSQL, suffixSQL),
		retrievers:  retrievers,
		chunkSize:   DefaultChunkSize,
	}
}

// PreparedSQL previews the single-row statement the runner will prepare.
func (r *Runner[T]) PreparedSQL() string {
	return r.preparedSQL
}

// SetData sets the dataset for the next Execute.
func (r *Runner[T]) SetData(data []T) *Runner[T] {
	r.data = data
	return r
}

// SetChunkSize overrides DefaultChunkSize. The size must be positive.
func (r *Runner[T]) SetChunkSize(size int) error {
	if size <= 0 {
		return ErrNonPositiveChunkSize
	}
	r.chunkSize = size
	return nil
}

// SetDebugEnabled turns per-chunk debug SQL recording on or off. Off by
// default to avoid the rendering overhead.
func (r *Runner[T]) SetDebugEnabled(enabled bool) *Runner[T] {
	r.debugEnabled = enabled
	return r
}

// DebugSQL returns one rewritten statement per executed chunk from the last
// Execute run. Empty unless debug recording was enabled.
func (r *Runner[T]) DebugSQL() []string {
	out := make([]string, len(r.debugSQL))
	copy(out, r.debugSQL)
	return out
}

// Execute bulk-inserts the current dataset over conn, executing one batched
// statement call per chunk, and returns the total affected-row count.
//
// It never commits: transaction control stays with the caller, so a failure
// mid-run leaves the caller free to keep or roll back already-executed
// chunks. The prepared statement is released on every exit path.
func (r *Runner[T]) Execute(ctx context.Context, conn sqldb.Conn) (total int64, err error) {
	r.debugSQL = nil

	stmt, err := conn.Prepare(ctx, r.preparedSQL)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	chunkRows := 0
	var tuples []string // per-row debug tuples of the current chunk

	for _, item := range r.data {
		params := make([]param.Parameter, 0, len(r.retrievers))
		for i, retrieve := range r.retrievers {
			p := retrieve(item)
			params = append(params, p)
			if err := p.BindTo(stmt, i+1); err != nil {
				return 0, err
			}
		}
		if err := stmt.AddBatch(); err != nil {
			return 0, err
		}
		chunkRows++

		if r.debugEnabled {
			tuple, err := statement.DebugSQL(r.tupleSQL, params)
			if err != nil {
				return 0, err
			}
			tuples = append(tuples, tuple)
		}

		if chunkRows == r.chunkSize {
			n, err := r.flush(ctx, stmt, tuples)
			if err != nil {
				return 0, err
			}
			total += n
			chunkRows = 0
			tuples = tuples[:0]
		}
	}

	// Remaining rows of the final, possibly smaller chunk. An exact-multiple
	// dataset leaves nothing behind and must not trigger an empty execution.
	if chunkRows > 0 {
		n, err := r.flush(ctx, stmt, tuples)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

// flush executes the pending batch, sums its per-row counts, and records the
// chunk's debug SQL when enabled.
func (r *Runner[T]) flush(ctx context.Context, stmt sqldb.Stmt, tuples []string) (int64, error) {
	counts, err := stmt.ExecuteBatch(ctx)
	if err != nil {
		return 0, err
	}

	if r.debugEnabled {
		r.debugSQL = append(r.debugSQL, joinSQL(r.baseSQL, strings.Join(tuples, ","), r.suffixSQL))
	}

	var sum int64
	for _, n := range counts {
		sum += n
	}
	return sum, nil
}
