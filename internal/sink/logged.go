package sink

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
)

// Logged wraps a sink and logs every command before forwarding it.
type Logged struct {
	next   layout.Sink
	logger *log.Logger
}

// NewLogged creates a logging decorator around next.
func NewLogged(next layout.Sink, logger *log.Logger) *Logged {
	return &Logged{next: next, logger: logger}
}

// PlaceInstance logs and forwards a placement.
func (l *Logged) PlaceInstance(prototypeID string, position, rotation core.Vec3) (layout.Handle, error) {
	h, err := l.next.PlaceInstance(prototypeID, position, rotation)
	if err != nil {
		l.logger.Error("place failed", "prototype", prototypeID, "position", position.String(), "error", err)
		return h, err
	}
	l.logger.Debug("placed", "prototype", prototypeID, "position", position.String(), "handle", h)
	return h, nil
}

// PlaceTrigger forwards a trigger volume when the wrapped sink supports
// them and falls back to a plain placement otherwise.
func (l *Logged) PlaceTrigger(prototypeID string, box core.Box) (layout.Handle, error) {
	ts, ok := l.next.(layout.TriggerSink)
	if !ok {
		return l.PlaceInstance(prototypeID, box.Center, core.Vec3{})
	}
	h, err := ts.PlaceTrigger(prototypeID, box)
	if err != nil {
		l.logger.Error("trigger failed", "prototype", prototypeID, "error", err)
		return h, err
	}
	l.logger.Debug("trigger placed",
		"prototype", prototypeID,
		"center", box.Center.String(),
		"size", box.Size.String(),
		"handle", h,
	)
	return h, nil
}

// AttachChild logs and forwards a parent link.
func (l *Logged) AttachChild(parent, child layout.Handle) error {
	if err := l.next.AttachChild(parent, child); err != nil {
		l.logger.Error("attach failed", "parent", parent, "child", child, "error", err)
		return err
	}
	l.logger.Debug("attached", "parent", parent, "child", child)
	return nil
}

// ReportDeath logs and forwards a death.
func (l *Logged) ReportDeath() {
	l.logger.Info("agent died")
	l.next.ReportDeath()
}

// ReportScoreDelta logs and forwards a score change.
func (l *Logged) ReportScoreDelta(amount int) {
	l.logger.Info("score", "delta", amount)
	l.next.ReportScoreDelta(amount)
}
