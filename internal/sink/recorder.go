// Package sink provides SpawnSink implementations: an in-memory recorder
// and a logging decorator.
package sink

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
)

// Instance is one placed prototype.
type Instance struct {
	Handle    layout.Handle
	Prototype string
	Position  core.Vec3
	Rotation  core.Vec3
	Trigger   *core.Box     // Set for trigger volumes
	Parent    layout.Handle // Empty when unattached
}

// Recorder is an in-memory sink that keeps every command it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu        sync.RWMutex
	order     []layout.Handle
	instances map[layout.Handle]*Instance
	deaths    int
	score     int
	deltas    []int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		instances: make(map[layout.Handle]*Instance),
	}
}

// PlaceInstance records a placement under a fresh UUID handle.
func (r *Recorder) PlaceInstance(prototypeID string, position, rotation core.Vec3) (layout.Handle, error) {
	if prototypeID == "" {
		return "", fmt.Errorf("sink: empty prototype id")
	}
	return r.add(&Instance{
		Prototype: prototypeID,
		Position:  position,
		Rotation:  rotation,
	}), nil
}

// PlaceTrigger records a sized trigger volume.
func (r *Recorder) PlaceTrigger(prototypeID string, box core.Box) (layout.Handle, error) {
	if prototypeID == "" {
		return "", fmt.Errorf("sink: empty prototype id")
	}
	return r.add(&Instance{
		Prototype: prototypeID,
		Position:  box.Center,
		Trigger:   &box,
	}), nil
}

func (r *Recorder) add(inst *Instance) layout.Handle {
	inst.Handle = layout.Handle(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[inst.Handle] = inst
	r.order = append(r.order, inst.Handle)
	return inst.Handle
}

// AttachChild parents child to parent. Both handles must exist.
func (r *Recorder) AttachChild(parent, child layout.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.instances[parent]; !ok {
		return fmt.Errorf("sink: unknown parent %s", parent)
	}
	c, ok := r.instances[child]
	if !ok {
		return fmt.Errorf("sink: unknown child %s", child)
	}
	if parent == child {
		return fmt.Errorf("sink: cannot attach %s to itself", child)
	}
	c.Parent = parent
	return nil
}

// ReportDeath counts an agent death.
func (r *Recorder) ReportDeath() {
	r.mu.Lock()
	r.deaths++
	r.mu.Unlock()
}

// ReportScoreDelta accumulates a score change.
func (r *Recorder) ReportScoreDelta(amount int) {
	r.mu.Lock()
	r.score += amount
	r.deltas = append(r.deltas, amount)
	r.mu.Unlock()
}

// Instances returns a copy of every placement in the order received.
func (r *Recorder) Instances() []Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Instance, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, *r.instances[h])
	}
	return out
}

// Instance looks up a placement by handle.
func (r *Recorder) Instance(h layout.Handle) (Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.instances[h]
	if !ok {
		return Instance{}, false
	}
	return *inst, true
}

// Children returns the handles attached to parent.
func (r *Recorder) Children(parent layout.Handle) []layout.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []layout.Handle
	for _, h := range r.order {
		if r.instances[h].Parent == parent {
			out = append(out, h)
		}
	}
	return out
}

// Deaths returns how many deaths were reported.
func (r *Recorder) Deaths() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.deaths
}

// Score returns the sum of all reported score deltas.
func (r *Recorder) Score() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.score
}

// Deltas returns every reported score delta in order.
func (r *Recorder) Deltas() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int(nil), r.deltas...)
}
