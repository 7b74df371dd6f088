package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/clipboard"
	"github.com/yildizm/NewsLens/internal/session"
	"github.com/yildizm/NewsLens/internal/view"
)

type fakeBackend struct {
	predictCalls int
	predictTexts []string
	result       *classify.Result
	err          error
	panicWith    interface{}

	info    *classify.ModelInfo
	infoErr error

	health    *classify.Health
	healthErr error
}

func (f *fakeBackend) Predict(_ context.Context, text string) (*classify.Result, error) {
	f.predictCalls++
	f.predictTexts = append(f.predictTexts, text)
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.result, f.err
}

func (f *fakeBackend) ModelInfo(context.Context) (*classify.ModelInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeBackend) Health(context.Context) (*classify.Health, error) {
	return f.health, f.healthErr
}

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) Write(text string) error {
	c.writes = append(c.writes, text)
	return c.err
}

var _ clipboard.Writer = (*fakeClipboard)(nil)

type scheduled struct {
	after time.Duration
	msg   tea.Msg
}

// recorder replaces tea.Tick so tests decide when scheduled messages arrive
type recorder struct {
	pending []scheduled
}

func (r *recorder) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.pending = append(r.pending, scheduled{after: d, msg: fn(time.Time{})})
	return nil
}

func (r *recorder) timers() []session.Timer {
	var out []session.Timer
	for _, s := range r.pending {
		if tm, ok := s.msg.(timerMsg); ok {
			out = append(out, tm.timer)
		}
	}
	return out
}

func (r *recorder) reveals() []tea.Msg {
	var out []tea.Msg
	for _, s := range r.pending {
		if _, ok := s.msg.(revealMsg); ok {
			out = append(out, s.msg)
		}
	}
	return out
}

func politicsResult() *classify.Result {
	return &classify.Result{
		RequestID: "req-1",
		Prediction: &classify.Prediction{
			Label:      "POLITICS",
			Confidence: 0.823,
			AllProbabilities: []classify.LabelProbability{
				{Label: "POLITICS", Probability: 0.823},
				{Label: "WELLNESS", Probability: 0.1},
				{Label: "TRAVEL", Probability: 0.077},
			},
		},
	}
}

func newTestModel(t *testing.T, backend *fakeBackend, clip *fakeClipboard, width int) (*Model, *recorder) {
	t.Helper()
	if clip == nil {
		clip = &fakeClipboard{}
	}
	m := NewModel(Options{
		Backend:     backend,
		Clipboard:   clip,
		NarrowWidth: 100,
		Examples:    []string{"first example", "second example"},
	})
	rec := &recorder{}
	m.schedule = rec.schedule
	m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return m, rec
}

// drain runs cmd and every command produced in response until none remain
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestSubmit_EmptyInputMakesNoRequest(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, rec := newTestModel(t, backend, nil, 120)

	typeText(m, "   ")
	drain(m, press(m, tea.KeyEnter))

	if backend.predictCalls != 0 {
		t.Fatalf("expected no backend calls, got %d", backend.predictCalls)
	}
	if m.session.State() != session.StateError {
		t.Fatalf("expected error state, got %s", m.session.State())
	}
	if m.session.ErrorMessage() != classify.MsgEmptyInput {
		t.Errorf("unexpected message %q", m.session.ErrorMessage())
	}

	timers := rec.timers()
	if len(timers) != 1 || timers[0].After != session.DefaultErrorTimeout {
		t.Fatalf("expected one revert timer of %s, got %+v", session.DefaultErrorTimeout, timers)
	}

	m.Update(timerMsg{timer: timers[0]})
	if m.session.State() != session.StateEmpty {
		t.Errorf("expected revert to empty, got %s", m.session.State())
	}
}

func TestSubmit_TooLongMakesNoRequest(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, _ := newTestModel(t, backend, nil, 120)

	typeText(m, strings.Repeat("a", classify.MaxTextLength+1))
	drain(m, press(m, tea.KeyEnter))

	if backend.predictCalls != 0 {
		t.Fatalf("expected no backend calls, got %d", backend.predictCalls)
	}
	if m.session.ErrorMessage() != classify.MsgTooLong {
		t.Errorf("unexpected message %q", m.session.ErrorMessage())
	}
	if !strings.Contains(m.View(), "5001 / 5000") {
		t.Error("expected counter to show the raw length")
	}
}

func TestSubmit_SuccessRendersPrediction(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, rec := newTestModel(t, backend, nil, 120)

	typeText(m, "  Hello World  ")
	drain(m, press(m, tea.KeyEnter))

	if backend.predictCalls != 1 || backend.predictTexts[0] != "Hello World" {
		t.Fatalf("expected one call with trimmed text, got %v", backend.predictTexts)
	}
	if m.session.State() != session.StateSuccess {
		t.Fatalf("expected success, got %s", m.session.State())
	}
	if m.session.Busy() {
		t.Error("busy flag must be released")
	}
	if m.prediction.Tier != view.TierPositive {
		t.Errorf("expected positive tier, got %s", m.prediction.Tier)
	}

	out := m.View()
	for _, want := range []string{"POLITICS", "82.3%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if strings.Contains(out, "WELLNESS") {
		t.Error("probability rows should not show before they are revealed")
	}

	for _, msg := range rec.reveals() {
		m.Update(msg)
	}
	if m.revealed != 3 {
		t.Fatalf("expected all rows revealed, got %d", m.revealed)
	}
	if !strings.Contains(m.View(), "WELLNESS") {
		t.Error("expected revealed rows in view")
	}
	if !strings.Contains(m.View(), view.PreprocessedPlaceholder) {
		t.Error("expected preprocessed placeholder")
	}
}

func TestSubmit_BackendRejectionShowsBackendMessage(t *testing.T) {
	backend := &fakeBackend{err: classify.NewRejection(200, "model unavailable", classify.MsgUnknownError)}
	m, _ := newTestModel(t, backend, nil, 120)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))

	if m.session.ErrorMessage() != "model unavailable" {
		t.Errorf("expected backend message, got %q", m.session.ErrorMessage())
	}
	if m.session.Busy() {
		t.Error("busy flag must be released on failure")
	}
	if !strings.Contains(m.View(), "model unavailable") {
		t.Error("expected error in view")
	}
}

func TestSubmit_PanicReleasesBusy(t *testing.T) {
	backend := &fakeBackend{panicWith: "boom"}
	m, _ := newTestModel(t, backend, nil, 120)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))

	if m.session.Busy() {
		t.Error("busy flag must be released after a panic")
	}
	if m.session.ErrorMessage() != classify.MsgPredictFailed {
		t.Errorf("unexpected message %q", m.session.ErrorMessage())
	}
}

func TestSubmit_IgnoredWhileBusy(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, _ := newTestModel(t, backend, nil, 120)

	typeText(m, "Hello World")
	first := press(m, tea.KeyEnter)
	if !m.session.Busy() {
		t.Fatal("expected busy after submit")
	}
	if !strings.Contains(m.View(), "Classifying...") {
		t.Error("expected busy label on the classify button")
	}

	if second := press(m, tea.KeyEnter); second != nil {
		t.Error("second submit should produce no command")
	}

	drain(m, first)
	if backend.predictCalls != 1 {
		t.Errorf("expected exactly one request, got %d", backend.predictCalls)
	}
}

func TestTimer_StaleRevertIgnored(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, rec := newTestModel(t, backend, nil, 120)

	drain(m, press(m, tea.KeyEnter))
	stale := rec.timers()[0]

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))

	m.Update(timerMsg{timer: stale})
	if m.session.State() != session.StateSuccess {
		t.Errorf("stale timer must not change the view, got %s", m.session.State())
	}
}

func TestCopy_WithoutPredictionDoesNothing(t *testing.T) {
	clip := &fakeClipboard{}
	m, _ := newTestModel(t, &fakeBackend{}, clip, 120)

	if cmd := press(m, tea.KeyCtrlY); cmd != nil {
		t.Error("copy without a prediction should produce no command")
	}
	if len(clip.writes) != 0 {
		t.Errorf("expected no clipboard writes, got %v", clip.writes)
	}
}

func TestCopy_SuccessShowsConfirmation(t *testing.T) {
	clip := &fakeClipboard{}
	m, rec := newTestModel(t, &fakeBackend{result: politicsResult()}, clip, 120)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))
	drain(m, press(m, tea.KeyCtrlY))

	if len(clip.writes) != 1 || clip.writes[0] != "Predicted Category: POLITICS\nConfidence: 82.3%" {
		t.Fatalf("unexpected clipboard writes %q", clip.writes)
	}
	if !m.session.Copied() || !strings.Contains(m.View(), "Copied!") {
		t.Fatal("expected copy confirmation")
	}

	var confirm session.Timer
	for _, tm := range rec.timers() {
		if tm.Kind == session.TimerCopyConfirm {
			confirm = tm
		}
	}
	m.Update(timerMsg{timer: confirm})
	if m.session.Copied() {
		t.Error("confirmation should be hidden after its timer")
	}
}

func TestCopy_FailureOpensAlert(t *testing.T) {
	clip := &fakeClipboard{err: classify.NewError(classify.KindClipboard, classify.MsgClipboardFailure)}
	m, _ := newTestModel(t, &fakeBackend{result: politicsResult()}, clip, 120)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))
	drain(m, press(m, tea.KeyCtrlY))

	if !strings.Contains(m.View(), classify.MsgClipboardFailure) {
		t.Fatal("expected clipboard alert")
	}
	if m.session.State() != session.StateSuccess {
		t.Error("clipboard failure must not change the result view")
	}

	typeText(m, "x")
	if m.alert == "" {
		t.Error("typing must not dismiss the alert")
	}
	press(m, tea.KeyEnter)
	if m.alert != "" {
		t.Error("enter should dismiss the alert")
	}
	if m.input.Value() != "Hello World" {
		t.Errorf("input must be untouched while the alert is open, got %q", m.input.Value())
	}
}

func TestClear_ResetsEverything(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{result: politicsResult()}, nil, 120)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))
	press(m, tea.KeyCtrlL)

	if m.input.Value() != "" {
		t.Errorf("expected empty input, got %q", m.input.Value())
	}
	if m.session.State() != session.StateEmpty || m.session.Current() != nil {
		t.Error("expected empty view without a prediction")
	}
	if m.focus != focusInput {
		t.Error("expected focus on the input")
	}
}

func TestNarrowLayout_ResultsMoveIntoView(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{result: politicsResult()}, nil, 80)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))

	if m.focus != focusResults {
		t.Fatal("expected results to take focus on a narrow screen")
	}
	out := m.View()
	if strings.Index(out, "Result") > strings.Index(out, "Headline") {
		t.Error("expected the result pane above the input pane")
	}

	typeText(m, "!")
	if m.focus != focusInput {
		t.Error("typing should return focus to the input")
	}
}

func TestModelInfo_Overlay(t *testing.T) {
	backend := &fakeBackend{info: &classify.ModelInfo{
		ModelType:          "Logistic Regression",
		Vectorizer:         "TF-IDF",
		Classifier:         "LogisticRegression",
		NgramRange:         "(1, 2)",
		Categories:         []string{"POLITICS", "TRAVEL"},
		PreprocessingSteps: []string{"Lowercase", "Remove punctuation"},
	}}
	m, _ := newTestModel(t, backend, nil, 120)

	cmd := press(m, tea.KeyCtrlO)
	if !m.modal.open || !m.modal.loading {
		t.Fatal("overlay should open in the loading state")
	}
	drain(m, cmd)

	out := m.View()
	for _, want := range []string{"Model Information", "TF-IDF", "TRAVEL", "2. Remove punctuation"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in overlay", want)
		}
	}

	press(m, tea.KeyEsc)
	if m.modal.open {
		t.Error("esc should close the overlay")
	}
}

func TestModelInfo_ErrorInline(t *testing.T) {
	backend := &fakeBackend{infoErr: classify.NewErrorWithCause(classify.KindTransport,
		"Error loading model information: connection refused", errors.New("connection refused"))}
	m, _ := newTestModel(t, backend, nil, 120)

	drain(m, press(m, tea.KeyCtrlO))

	if !strings.Contains(m.View(), "Error loading model information: connection refused") {
		t.Error("expected inline error in the overlay")
	}
	if m.session.State() != session.StateEmpty {
		t.Error("model info failure must not touch the result view")
	}
}

func TestHealthCheck(t *testing.T) {
	backend := &fakeBackend{health: &classify.Health{Status: "healthy", ModelLoaded: true}}
	m, _ := newTestModel(t, backend, nil, 120)

	if !strings.Contains(m.View(), "checking backend") {
		t.Error("expected pending health status")
	}
	drain(m, m.Init())
	if !m.health.healthy || !strings.Contains(m.View(), "model loaded") {
		t.Error("expected healthy status line")
	}

	down := &fakeBackend{healthErr: errors.New("dial tcp: refused")}
	m, _ = newTestModel(t, down, nil, 120)
	drain(m, m.Init())
	if m.health.healthy || !strings.Contains(m.View(), "backend unreachable") {
		t.Error("expected unreachable status line")
	}
}

func TestInputEditing(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{}, nil, 120)

	press(m, tea.KeyCtrlE)
	if m.input.Value() != "first example" {
		t.Fatalf("expected first example, got %q", m.input.Value())
	}
	press(m, tea.KeyCtrlE)
	if m.input.Value() != "second example" {
		t.Fatalf("expected second example, got %q", m.input.Value())
	}

	press(m, tea.KeyCtrlW)
	if m.input.Value() != "second " {
		t.Errorf("ctrl+w should delete the last word, got %q", m.input.Value())
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	typeText(m, "héllo")
	press(m, tea.KeyBackspace)
	if m.input.Value() != "second  héll" {
		t.Errorf("unexpected buffer %q", m.input.Value())
	}
	press(m, tea.KeyCtrlU)
	if m.input.Value() != "" {
		t.Error("ctrl+u should empty the input")
	}
}

func TestInput_LongPasteKeptWhole(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, _ := newTestModel(t, backend, nil, 120)

	pasted := strings.Repeat("b", classify.MaxTextLength+1)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(pasted), Paste: true})

	if got := classify.Length(m.input.Value()); got != classify.MaxTextLength+1 {
		t.Fatalf("expected %d characters kept, got %d", classify.MaxTextLength+1, got)
	}
	if !strings.Contains(m.View(), "5001 / 5000") {
		t.Error("expected counter to show the pasted length")
	}
}

func TestInput_AltEnterInsertsNewline(t *testing.T) {
	backend := &fakeBackend{result: politicsResult()}
	m, _ := newTestModel(t, backend, nil, 120)

	typeText(m, "Senate passes")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	typeText(m, "bill")

	if m.input.Value() != "Senate passes\nbill" {
		t.Errorf("expected a newline in the buffer, got %q", m.input.Value())
	}
	if backend.predictCalls != 0 {
		t.Error("alt+enter must not submit")
	}
}

func TestInput_ClearRefocusesAfterResults(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{result: politicsResult()}, nil, 80)

	typeText(m, "Hello World")
	drain(m, press(m, tea.KeyEnter))
	if m.input.Focused() {
		t.Fatal("input should blur while results have focus")
	}

	press(m, tea.KeyCtrlL)
	if m.input.Value() != "" || !m.input.Focused() {
		t.Errorf("expected an empty focused input, got %q focused=%v", m.input.Value(), m.input.Focused())
	}
	typeText(m, "x")
	if m.input.Value() != "x" {
		t.Errorf("expected typing to reach the input, got %q", m.input.Value())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{}, nil, 120)
	cmd := press(m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
