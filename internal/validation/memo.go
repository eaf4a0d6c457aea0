package validation

import (
	"context"
	"encoding/json"
	"sync"

	"pokehub-backend/internal/pokemon"

	"github.com/cespare/xxhash/v2"
)

// Memo remembers the last report of one editing session, keyed by a hash
// of the team payload (which includes its format). Re-validating an
// unchanged team returns the cached report. Errors are never cached.
type Memo struct {
	engine *Engine

	mu     sync.Mutex
	key    uint64
	report *Report
}

// NewMemo creates an empty memo over engine.
func NewMemo(engine *Engine) *Memo {
	return &Memo{engine: engine}
}

// Validate returns the report for team and whether it came from the cache.
func (m *Memo) Validate(ctx context.Context, team *pokemon.Team) (*Report, bool, error) {
	payload, err := json.Marshal(team)
	if err != nil {
		return nil, false, err
	}
	key := xxhash.Sum64(payload)

	m.mu.Lock()
	if m.report != nil && m.key == key {
		report := m.report
		m.mu.Unlock()
		return report, true, nil
	}
	m.mu.Unlock()

	report, err := m.engine.Validate(ctx, team)
	if err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	m.key = key
	m.report = report
	m.mu.Unlock()
	return report, false, nil
}

// Reset drops the cached report.
func (m *Memo) Reset() {
	m.mu.Lock()
	m.key = 0
	m.report = nil
	m.mu.Unlock()
}
