package formats_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/gamedata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSource blocks every read until release is closed and counts reads.
type gatedSource struct {
	release chan struct{}
	started chan struct{}
	once    sync.Once
	calls   atomic.Int32
	err     error
}

func newGatedSource() *gatedSource {
	return &gatedSource{release: make(chan struct{}), started: make(chan struct{})}
}

func (g *gatedSource) source() formats.Source {
	return func(ctx context.Context) (*gamedata.Bundle, error) {
		g.calls.Add(1)
		g.once.Do(func() { close(g.started) })
		<-g.release
		if g.err != nil {
			return nil, g.err
		}
		return testBundle(), nil
	}
}

func TestRegistryLoadsOnce(t *testing.T) {
	gate := newGatedSource()
	registry := formats.NewRegistry(gate.source())
	assert.Equal(t, formats.StateUninitialized, registry.State())

	const callers = 20
	var wg sync.WaitGroup
	results := make([]*formats.Ruleset, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = registry.Ruleset(context.Background(), "gen9ou")
		}(i)
	}

	<-gate.started
	assert.Equal(t, formats.StateLoading, registry.State())
	assert.False(t, registry.Ready())
	close(gate.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, int32(1), gate.calls.Load())
	assert.Equal(t, 1, registry.Loads())
	assert.Equal(t, formats.StateReady, registry.State())

	// Served from the resident table afterwards.
	_, err := registry.Ruleset(context.Background(), "gen9ou")
	require.NoError(t, err)
	assert.Equal(t, int32(1), gate.calls.Load())
}

func TestRegistryConfigurationErrors(t *testing.T) {
	gate := newGatedSource()
	close(gate.release)
	registry := formats.NewRegistry(gate.source())

	t.Run("Malformed id does not trigger a load", func(t *testing.T) {
		rs, err := registry.Ruleset(context.Background(), "ou")
		assert.Nil(t, rs)
		assert.ErrorIs(t, err, apperrors.ErrMalformedFormatID)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Equal(t, int32(0), gate.calls.Load())
	})

	t.Run("Unknown format", func(t *testing.T) {
		rs, err := registry.Ruleset(context.Background(), "gen9zu")
		assert.Nil(t, rs)
		assert.ErrorIs(t, err, apperrors.ErrFormatNotFound)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), "gen9zu")
	})
}

func TestRegistryLoadFailureIsRetried(t *testing.T) {
	gate := newGatedSource()
	gate.err = errors.New("disk on fire")
	close(gate.release)
	registry := formats.NewRegistry(gate.source())

	_, err := registry.Ruleset(context.Background(), "gen9ou")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRulesetLoadFailed)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, formats.StateUninitialized, registry.State())

	gate.err = nil
	rs, err := registry.Ruleset(context.Background(), "gen9ou")
	require.NoError(t, err)
	assert.Equal(t, "gen9ou", rs.ID())
	assert.Equal(t, int32(2), gate.calls.Load())
}

func TestRegistryCallerCancellation(t *testing.T) {
	gate := newGatedSource()
	registry := formats.NewRegistry(gate.source())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := registry.Ruleset(ctx, "gen9ou")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The shared load keeps going and later callers get its result.
	close(gate.release)
	rs, err := registry.Ruleset(context.Background(), "gen9ou")
	require.NoError(t, err)
	assert.Equal(t, "gen9ou", rs.ID())
	assert.Equal(t, int32(1), gate.calls.Load())
}

func TestRegistryFormats(t *testing.T) {
	registry := formats.NewRegistry(formats.EmbeddedSource())

	all, err := registry.Formats(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, all)

	ids := make([]string, 0, len(all))
	for _, rs := range all {
		ids = append(ids, rs.ID())
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "gen9ou")
	assert.Contains(t, ids, "gen8vgc2020")
	assert.True(t, registry.Ready())
}

func TestDirSourceMissingDirectory(t *testing.T) {
	registry := formats.NewRegistry(formats.DirSource(t.TempDir()))

	err := registry.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrRulesetLoadFailed)
	assert.Equal(t, "uninitialized", registry.State().String())
}

func TestRegistryRejectsInconsistentData(t *testing.T) {
	registry := formats.NewRegistry(func(context.Context) (*gamedata.Bundle, error) {
		bundle := testBundle()
		bundle.Formats = append(bundle.Formats, gamedata.FormatDef{ID: "gen8ou", Generation: 8, Tier: "ou"})
		return bundle, nil
	})

	err := registry.Load(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrRulesetLoadFailed)
	assert.ErrorIs(t, err, apperrors.ErrGameDataInvalid)
	assert.Contains(t, err.Error(), "no dex for generation 8")
	assert.False(t, registry.Ready())
}
