package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/layout"
)

func TestPlayDeterministic(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	a, err := r.Play(42)
	require.NoError(t, err)
	b, err := r.Play(42)
	require.NoError(t, err)

	assert.Equal(t, a.Result, b.Result)
	assert.Equal(t, a.Outcome, b.Outcome)
	assert.Equal(t, a.Record(), b.Record())
}

func TestPlayPlacesEverything(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	rep, err := r.Play(7)
	require.NoError(t, err)

	res := rep.Result
	// platforms + goal + hazards + gems + boundary
	want := len(res.Platforms) + 1 + len(res.Hazards) + len(res.Gems) + 1
	assert.Len(t, rep.Recorder.Instances(), want)
	assert.Equal(t, rep.Outcome.Score, rep.Recorder.Score())

	goal, ok := rep.Recorder.Instance(rep.Applied.Goal)
	require.True(t, ok)
	assert.Equal(t, rep.Applied.Platforms[len(rep.Applied.Platforms)-1], goal.Parent)
}

func TestRecord(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	rep, err := r.Play(9)
	require.NoError(t, err)

	rec := rep.Record()
	assert.Equal(t, "classic", rec.Preset)
	assert.Equal(t, uint64(9), rec.Seed)
	assert.Equal(t, len(rep.Result.Platforms), rec.Platforms)
	assert.Equal(t, rep.Outcome.Won, rec.Won)
	assert.Equal(t, rep.Result.Attempts, rec.Attempts)
}

func TestGenerateMatchesPlayLayout(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	res, err := r.Generate(11)
	require.NoError(t, err)
	rep, err := r.Play(11)
	require.NoError(t, err)

	assert.Equal(t, res, rep.Result)
}

func TestNewRejectsBadLevel(t *testing.T) {
	lvl := config.DefaultLevel()
	lvl.Generation.MinPlatforms = 0
	_, err := New(lvl, nil)
	assert.ErrorIs(t, err, layout.ErrConfiguration)

	lvl = config.DefaultLevel()
	lvl.Agent.FallOdds = 2
	_, err = New(lvl, nil)
	assert.Error(t, err)
}

func TestBatchMatchesSequential(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	reports, err := r.Batch(context.Background(), 100, 16, 4)
	require.NoError(t, err)
	require.Len(t, reports, 16)

	for i, rep := range reports {
		require.NotNil(t, rep)
		assert.Equal(t, uint64(100+i), rep.Seed)

		seq, err := r.Play(rep.Seed)
		require.NoError(t, err)
		assert.Equal(t, seq.Outcome, rep.Outcome)
	}
}

func TestBatchEmpty(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	reports, err := r.Batch(context.Background(), 1, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestBatchCancelled(t *testing.T) {
	r, err := New(config.DefaultLevel(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Batch(ctx, 1, 8, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}
