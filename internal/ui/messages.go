package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/landing/internal/loader"
)

// Messages delivered to the root model
type loaderStateMsg struct {
	state loader.State
}

type loaderDoneMsg struct{}

type toastClearedMsg struct{}

type exportResultMsg struct {
	path string
	err  error
}

type revealTickMsg time.Time

// eventQueueSize bounds buffered background events. A full loader run
// produces about sixty.
const eventQueueSize = 128

// listen waits for the next background event. It returns nil once done is
// closed so the program can shut down.
func listen(events <-chan tea.Msg, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-done:
			return nil
		}
	}
}

// revealTick drives the statistic panel animation
func revealTick() tea.Cmd {
	return tea.Tick(30*time.Millisecond, func(t time.Time) tea.Msg {
		return revealTickMsg(t)
	})
}
