// Package tui provides the Bubble Tea front ends for platformgen: the layout
// inspector, the run history scoreboard, plain summaries and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultPlaybackRate is how many platforms per second a replay advances.
const defaultPlaybackRate = 8

// PlaybackTickMsg advances a replay by one platform.
type PlaybackTickMsg time.Time

// playbackCmd returns a Bubble Tea command that sends one playback tick
// after 1/rate seconds.
func playbackCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = defaultPlaybackRate
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PlaybackTickMsg(t)
	})
}
