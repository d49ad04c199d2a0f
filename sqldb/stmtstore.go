package sqldb

import "sync"

// StmtStore caches rewritten SQL text keyed by the original statement, so a
// dialect impl only pays the placeholder rewrite once per distinct query.
// Safe for concurrent use.
type StmtStore struct {
	mu    sync.RWMutex
	stmts map[string]string
}

func NewStmtStore() *StmtStore {
	return &StmtStore{stmts: make(map[string]string)}
}

func (s *StmtStore) Set(key string, stmt string) {
	s.mu.Lock()
	s.stmts[key] = stmt
	s.mu.Unlock()
}

func (s *StmtStore) Get(key string) (string, bool) {
	s.mu.RLock()
	stmt, exists := s.stmts[key]
	s.mu.RUnlock()
	return stmt, exists
}

func (s *StmtStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stmts)
}
