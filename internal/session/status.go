// Package session reacts to an agent entering the triggers of a generated
// layout: gems award score, hazards and the boundary kill, the goal wins.
// Reactions are emitted to a layout.Sink instead of mutating engine state.
package session

import "github.com/vovakirdan/platformgen/internal/layout"

// DefaultMaxHealth is the health an agent starts with.
const DefaultMaxHealth = 100.0

// Status tracks one agent's health, score and outcome.
type Status struct {
	sink      layout.Sink
	health    float64
	maxHealth float64
	score     int
	dead      bool
	won       bool
}

// NewStatus creates a live agent at full health reporting to s.
func NewStatus(s layout.Sink, maxHealth float64) *Status {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &Status{
		sink:      s,
		health:    maxHealth,
		maxHealth: maxHealth,
	}
}

// Health returns current health.
func (st *Status) Health() float64 {
	return st.health
}

// SetHealth sets health, capped at the maximum. Zero or less kills.
func (st *Status) SetHealth(v float64) {
	switch {
	case v <= 0:
		st.Kill()
	case v > st.maxHealth:
		st.health = st.maxHealth
	default:
		st.health = v
	}
}

// Score returns the current score.
func (st *Status) Score() int {
	return st.score
}

// AddScore changes the score, never letting it drop below zero, and
// reports the applied change.
func (st *Status) AddScore(delta int) {
	next := st.score + delta
	if next < 0 {
		next = 0
	}
	applied := next - st.score
	st.score = next
	if applied != 0 {
		st.sink.ReportScoreDelta(applied)
	}
}

// Kill marks the agent dead and reports it once.
func (st *Status) Kill() {
	if st.dead {
		return
	}
	st.health = 0
	st.dead = true
	st.sink.ReportDeath()
}

// Alive reports whether the agent is still alive.
func (st *Status) Alive() bool {
	return !st.dead
}

// Won reports whether the agent reached the goal alive.
func (st *Status) Won() bool {
	return st.won
}
