package formats

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/gamedata"
	"pokehub-backend/internal/logger"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle stage of the rule table.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Source produces the raw game data the rule table is built from.
type Source func(ctx context.Context) (*gamedata.Bundle, error)

// EmbeddedSource reads the game data compiled into the binary.
func EmbeddedSource() Source {
	return func(ctx context.Context) (*gamedata.Bundle, error) {
		return gamedata.Load(ctx, gamedata.Embedded())
	}
}

// DirSource reads game data from a directory on disk.
func DirSource(dir string) Source {
	return func(ctx context.Context) (*gamedata.Bundle, error) {
		return gamedata.Load(ctx, os.DirFS(dir))
	}
}

const loadKey = "rulesets"

// Registry resolves format ids to rulesets. The table is loaded lazily on
// first use; concurrent callers during the load share the same in-flight
// load and the data is parsed at most once. A failed load leaves the
// registry uninitialized so a later call may retry.
type Registry struct {
	source Source
	group  singleflight.Group
	state  atomic.Int32
	loads  atomic.Int32

	mu       sync.RWMutex
	rulesets map[string]*Ruleset
}

// NewRegistry creates a registry over the given source. Nothing is read
// until the first lookup or an explicit Load.
func NewRegistry(source Source) *Registry {
	return &Registry{source: source}
}

// State returns the current lifecycle stage.
func (r *Registry) State() State {
	return State(r.state.Load())
}

// Ready reports whether rulesets can be served without waiting.
func (r *Registry) Ready() bool {
	return r.State() == StateReady
}

// Loads returns how many times the source has been read.
func (r *Registry) Loads() int {
	return int(r.loads.Load())
}

// Load makes sure the table is resident, waiting for an in-flight load if
// there is one. The load itself is not cancelled when ctx is; only this
// caller's wait is.
func (r *Registry) Load(ctx context.Context) error {
	if r.Ready() {
		return nil
	}

	ch := r.group.DoChan(loadKey, func() (interface{}, error) {
		// A caller that saw the table unloaded may arrive after the
		// previous flight finished.
		if r.Ready() {
			return nil, nil
		}
		r.state.Store(int32(StateLoading))
		rulesets, err := r.load(context.WithoutCancel(ctx))
		if err != nil {
			r.state.Store(int32(StateUninitialized))
			return nil, err
		}
		r.mu.Lock()
		r.rulesets = rulesets
		r.mu.Unlock()
		r.state.Store(int32(StateReady))
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrRulesetLoadFailed, res.Err)
		}
		return nil
	}
}

func (r *Registry) load(ctx context.Context) (map[string]*Ruleset, error) {
	log := logger.New().WithField("component", "formats")
	start := time.Now()
	r.loads.Add(1)

	bundle, err := r.source(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read game data")
		return nil, err
	}
	rulesets, err := Build(bundle)
	if err != nil {
		log.WithError(err).Error("Failed to build format rulesets")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGameDataInvalid, err)
	}

	log.WithFields(map[string]interface{}{
		"formats":  len(rulesets),
		"duration": time.Since(start).String(),
	}).Info("Format rulesets loaded")
	return rulesets, nil
}

// Ruleset resolves a fully-qualified format id such as "gen9ou". Malformed
// and unknown ids, as well as load failures, are configuration errors.
func (r *Registry) Ruleset(ctx context.Context, formatID string) (*Ruleset, error) {
	if _, _, err := ParseFormatID(formatID); err != nil {
		return nil, err
	}
	if err := r.Load(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	rs, ok := r.rulesets[formatID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrFormatNotFound, formatID)
	}
	return rs, nil
}

// Formats lists every known ruleset sorted by id.
func (r *Registry) Formats(ctx context.Context) ([]*Ruleset, error) {
	if err := r.Load(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]*Ruleset, 0, len(r.rulesets))
	for _, rs := range r.rulesets {
		out = append(out, rs)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out, nil
}
