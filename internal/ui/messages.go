package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/clipboard"
	"github.com/yildizm/NewsLens/internal/session"
)

// Message types exchanged between commands and the model
type predictDoneMsg struct {
	result *classify.Result
	err    error
}

type modelInfoMsg struct {
	info *classify.ModelInfo
	err  error
}

type healthMsg struct {
	health *classify.Health
	err    error
}

type copyDoneMsg struct {
	err error
}

type timerMsg struct {
	timer session.Timer
}

type spinnerTickMsg struct{}

type revealMsg struct {
	epoch uint64
}

// scheduleFunc delivers the message built by fn after d. Production code uses
// tea.Tick; tests substitute a recorder.
type scheduleFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// PredictCommand runs a single prediction. A panic inside the backend is
// reported as a transport failure so the caller always gets a predictDoneMsg.
func PredictCommand(backend classify.Backend, text string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = predictDoneMsg{err: classify.NewErrorWithCause(
					classify.KindTransport, classify.MsgPredictFailed, fmt.Errorf("panic: %v", r))}
			}
		}()

		result, err := backend.Predict(context.Background(), text)
		return predictDoneMsg{result: result, err: err}
	}
}

// ModelInfoCommand fetches model metadata independently of predictions
func ModelInfoCommand(backend classify.Backend) tea.Cmd {
	return func() tea.Msg {
		info, err := backend.ModelInfo(context.Background())
		return modelInfoMsg{info: info, err: err}
	}
}

// HealthCommand checks the backend once
func HealthCommand(backend classify.Backend) tea.Cmd {
	return func() tea.Msg {
		health, err := backend.Health(context.Background())
		return healthMsg{health: health, err: err}
	}
}

// CopyCommand writes text to the clipboard
func CopyCommand(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: w.Write(text)}
	}
}
