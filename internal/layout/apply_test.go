package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/platformgen/internal/core"
)

type placeCall struct {
	prototype string
	position  core.Vec3
}

// fakeSink records calls and fails on the nth placement when failAt > 0.
type fakeSink struct {
	places   []placeCall
	triggers []core.Box
	attached map[Handle]Handle
	failAt   int
}

func (f *fakeSink) PlaceInstance(id string, pos, _ core.Vec3) (Handle, error) {
	f.places = append(f.places, placeCall{id, pos})
	if f.failAt > 0 && len(f.places) == f.failAt {
		return "", errors.New("spawn quota exceeded")
	}
	return Handle(fmt.Sprintf("h%d", len(f.places))), nil
}

func (f *fakeSink) AttachChild(parent, child Handle) error {
	if f.attached == nil {
		f.attached = make(map[Handle]Handle)
	}
	f.attached[child] = parent
	return nil
}

func (f *fakeSink) ReportDeath()         {}
func (f *fakeSink) ReportScoreDelta(int) {}

type triggerSink struct {
	fakeSink
}

func (t *triggerSink) PlaceTrigger(id string, box core.Box) (Handle, error) {
	t.triggers = append(t.triggers, box)
	return "trigger", nil
}

func TestApplyOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GemOdds = 1
	res, err := GenerateSeeded(cfg, testCatalog(), 12)
	require.NoError(t, err)

	s := &fakeSink{}
	applied, err := Apply(res, s)
	require.NoError(t, err)

	n := len(res.Platforms)
	want := n + 1 + len(res.Hazards) + len(res.Gems) + 1
	require.Len(t, s.places, want)

	for i, p := range res.Platforms {
		assert.Equal(t, p.Prototype.ID, s.places[i].prototype)
		assert.Equal(t, p.Position, s.places[i].position)
	}
	assert.Equal(t, cfg.GoalPrototype, s.places[n].prototype)
	assert.Equal(t, BoundaryPrototype, s.places[want-1].prototype)
	assert.Equal(t, res.Boundary.Box.Center, s.places[want-1].position)

	require.Len(t, applied.Platforms, n)
	assert.Len(t, applied.Gems, len(res.Gems))
	assert.Len(t, applied.Hazards, len(res.Hazards))
	assert.Equal(t, applied.Platforms[n-1], s.attached[applied.Goal])
}

func TestApplyUsesTriggerSink(t *testing.T) {
	res, err := GenerateSeeded(DefaultConfig(), testCatalog(), 4)
	require.NoError(t, err)

	s := &triggerSink{}
	applied, err := Apply(res, s)
	require.NoError(t, err)

	require.Len(t, s.triggers, 1)
	assert.Equal(t, res.Boundary.Box, s.triggers[0])
	assert.Equal(t, Handle("trigger"), applied.Boundary)
}

func TestApplySinkFailure(t *testing.T) {
	res, err := GenerateSeeded(DefaultConfig(), testCatalog(), 4)
	require.NoError(t, err)
	before := *res

	s := &fakeSink{failAt: 3}
	applied, err := Apply(res, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSink)
	assert.Contains(t, err.Error(), "spawn quota exceeded")
	assert.Len(t, applied.Platforms, 2)
	assert.Equal(t, before, *res)
}
