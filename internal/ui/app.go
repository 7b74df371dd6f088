package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/clipboard"
	"github.com/yildizm/NewsLens/internal/logger"
	"github.com/yildizm/NewsLens/internal/session"
	"github.com/yildizm/NewsLens/internal/ui/components"
	"github.com/yildizm/NewsLens/internal/view"
)

const spinnerInterval = 100 * time.Millisecond

// focusArea is the pane that receives scrolling attention
type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Options configures the classifier TUI
type Options struct {
	Backend      classify.Backend
	Clipboard    clipboard.Writer
	Logger       *logger.Logger
	BaseURL      string
	Examples     []string
	NarrowWidth  int
	ErrorTimeout time.Duration
	CopyTimeout  time.Duration
}

// modelInfoOverlay is the state of the model information dialog
type modelInfoOverlay struct {
	open    bool
	loading bool
	info    *view.ModelInfoView
	err     string
}

// healthStatus is the result of the start-up health check
type healthStatus struct {
	known   bool
	healthy bool
	text    string
}

// Model is the interactive headline classifier
type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool

	session   *session.Controller
	backend   classify.Backend
	clipboard clipboard.Writer
	log       *logger.Logger

	input    textarea.Model
	keys     keyMap
	spinner  *components.Spinner
	spinning bool
	focus    focusArea

	examples    []string
	nextExample int
	narrowWidth int
	baseURL     string

	// prediction is rebuilt on success and on resize
	prediction  view.PredictionView
	revealed    int
	revealEpoch uint64

	modal  modelInfoOverlay
	alert  string
	health healthStatus

	schedule scheduleFunc
	styles   *Styles
}

// NewModel creates the classifier model
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logger.NewWithCallback("ui", nil)
		log.SetOutput(nil)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewOSC52(nil)
	}

	styles := GetStyles()
	keys := defaultKeyMap()

	return &Model{
		session: session.NewController(
			session.WithErrorTimeout(opts.ErrorTimeout),
			session.WithCopyTimeout(opts.CopyTimeout),
		),
		backend:     opts.Backend,
		clipboard:   clip,
		log:         log,
		input:       newHeadlineInput(styles, keys),
		keys:        keys,
		spinner:     components.NewSpinner("Classifying..."),
		examples:    opts.Examples,
		narrowWidth: opts.NarrowWidth,
		baseURL:     opts.BaseURL,
		schedule:    tea.Tick,
		styles:      styles,
	}
}

// Init starts the background health check
func (m *Model) Init() tea.Cmd {
	return HealthCommand(m.backend)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case predictDoneMsg:
		return m.handlePredictDone(msg)
	case modelInfoMsg:
		return m.handleModelInfo(msg)
	case healthMsg:
		return m.handleHealth(msg)
	case copyDoneMsg:
		return m.handleCopyDone(msg)
	case timerMsg:
		return m.handleTimer(msg)
	case spinnerTickMsg:
		return m.handleSpinnerTick()
	case revealMsg:
		return m.handleReveal(msg)
	}
	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.input.SetWidth(m.inputWidth())
	if p := m.session.Current(); p != nil {
		m.prediction = view.NewPredictionView(p, m.width, m.narrowWidth)
	}
	return m, nil
}

// handleKeyPress routes keys to the topmost layer: alert, then overlay, then
// the main screen. Unbound keys on the main screen edit the headline.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.handleQuit()
	}

	if m.alert != "" {
		if key.Matches(msg, m.keys.DismissAlert) {
			m.alert = ""
		}
		return m, nil
	}

	if m.modal.open {
		if key.Matches(msg, m.keys.CloseModal) {
			m.modal.open = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()
	case key.Matches(msg, m.keys.Clear):
		return m.handleClear()
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	case key.Matches(msg, m.keys.ModelInfo):
		return m.handleOpenModelInfo()
	case key.Matches(msg, m.keys.Example):
		return m.handleNextExample()
	case key.Matches(msg, m.keys.ClearInput):
		m.input.Reset()
		m.setFocus(focusInput)
		return m, nil
	case key.Matches(msg, m.keys.ToggleFocus):
		if m.focus == focusInput && m.session.State() == session.StateSuccess {
			m.setFocus(focusResults)
		} else {
			m.setFocus(focusInput)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.setFocus(focusInput)
		return m, nil
	}

	m.setFocus(focusInput)
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// setFocus moves attention between panes; the editor only accepts keys while focused
func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleSubmit validates the input and starts a prediction. Submits while a
// prediction is in flight are dropped.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.session.Busy() {
		m.log.Debug("prediction in flight, submit ignored")
		return m, nil
	}

	text, timer, err := m.session.Begin(m.input.Value())
	if err != nil {
		m.log.DebugWithFields("input rejected", []logger.Field{logger.F("kind", classify.KindOf(err))})
		return m, m.scheduleTimer(timer)
	}

	m.log.DebugWithFields("classifying headline", []logger.Field{logger.F("chars", classify.Length(text))})
	m.spinner.Reset()
	cmds := []tea.Cmd{PredictCommand(m.backend, text)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.tickSpinner())
	}
	return m, tea.Batch(cmds...)
}

// handlePredictDone renders the outcome of a prediction. The busy flag is
// released whatever the outcome.
func (m *Model) handlePredictDone(msg predictDoneMsg) (tea.Model, tea.Cmd) {
	defer m.session.Finish()

	if msg.err != nil {
		m.log.WarnWithFields("prediction failed", []logger.Field{
			logger.F("kind", classify.KindOf(msg.err)),
			logger.Error(msg.err),
		})
		return m, m.scheduleTimer(m.session.Fail(classify.UserMessage(msg.err, classify.MsgPredictFailed)))
	}
	if msg.result == nil || msg.result.Prediction == nil {
		m.log.Warn("prediction returned no result")
		return m, m.scheduleTimer(m.session.Fail(classify.MsgPredictFailed))
	}

	m.log.InfoWithFields("prediction rendered", []logger.Field{
		logger.F("label", msg.result.Prediction.Label),
		logger.RequestID(msg.result.RequestID),
		logger.Duration(msg.result.Duration),
	})

	m.session.Succeed(msg.result.Prediction)
	m.prediction = view.NewPredictionView(msg.result.Prediction, m.width, m.narrowWidth)
	if m.prediction.ScrollIntoView {
		m.setFocus(focusResults)
	}
	return m, m.startReveal()
}

// startReveal schedules the staggered appearance of the probability rows
func (m *Model) startReveal() tea.Cmd {
	m.revealEpoch++
	m.revealed = 0

	epoch := m.revealEpoch
	cmds := make([]tea.Cmd, 0, len(m.prediction.Rows))
	for _, row := range m.prediction.Rows {
		cmds = append(cmds, m.schedule(row.Delay, func(time.Time) tea.Msg {
			return revealMsg{epoch: epoch}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleReveal(msg revealMsg) (tea.Model, tea.Cmd) {
	if msg.epoch == m.revealEpoch && m.revealed < len(m.prediction.Rows) {
		m.revealed++
	}
	return m, nil
}

// handleClear resets the input, drops the prediction and returns focus to the input
func (m *Model) handleClear() (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.session.Clear()
	m.prediction = view.PredictionView{}
	m.revealEpoch++
	m.revealed = 0
	m.setFocus(focusInput)
	m.log.Debug("session cleared")
	return m, nil
}

func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	text, ok := m.session.CopyText()
	if !ok {
		return m, nil
	}
	return m, CopyCommand(m.clipboard, text)
}

func (m *Model) handleCopyDone(msg copyDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.WarnWithFields("clipboard write failed", []logger.Field{logger.Error(msg.err)})
		m.alert = classify.UserMessage(msg.err, classify.MsgClipboardFailure)
		return m, nil
	}
	return m, m.scheduleTimer(m.session.CopySucceeded())
}

func (m *Model) handleOpenModelInfo() (tea.Model, tea.Cmd) {
	m.modal = modelInfoOverlay{open: true, loading: true}
	return m, ModelInfoCommand(m.backend)
}

func (m *Model) handleModelInfo(msg modelInfoMsg) (tea.Model, tea.Cmd) {
	m.modal.loading = false
	if msg.err != nil {
		m.log.WarnWithFields("model info failed", []logger.Field{logger.Error(msg.err)})
		m.modal.err = classify.UserMessage(msg.err, classify.MsgModelInfoFailed)
		m.modal.info = nil
		return m, nil
	}

	info := view.NewModelInfoView(msg.info)
	m.modal.info = &info
	m.modal.err = ""
	return m, nil
}

func (m *Model) handleHealth(msg healthMsg) (tea.Model, tea.Cmd) {
	m.health.known = true
	if msg.err != nil || msg.health == nil {
		m.log.WarnWithFields("health check failed", []logger.Field{logger.Error(msg.err)})
		m.health.healthy = false
		m.health.text = "backend unreachable"
		return m, nil
	}

	m.health.healthy = msg.health.Healthy()
	switch {
	case m.health.healthy:
		m.health.text = "model loaded"
	case msg.health.Message != "":
		m.health.text = msg.health.Message
	case !msg.health.ModelLoaded:
		m.health.text = "model not loaded"
	default:
		m.health.text = msg.health.Status
	}
	return m, nil
}

func (m *Model) handleNextExample() (tea.Model, tea.Cmd) {
	if len(m.examples) == 0 {
		return m, nil
	}
	m.input.SetValue(m.examples[m.nextExample%len(m.examples)])
	m.nextExample++
	m.setFocus(focusInput)
	return m, nil
}

func (m *Model) handleTimer(msg timerMsg) (tea.Model, tea.Cmd) {
	if m.session.Expire(msg.timer) {
		m.log.Debug("%s timer fired", msg.timer.Kind)
	}
	return m, nil
}

func (m *Model) handleSpinnerTick() (tea.Model, tea.Cmd) {
	if !m.session.Busy() {
		m.spinning = false
		return m, nil
	}
	m.spinner.Tick()
	return m, m.tickSpinner()
}

func (m *Model) tickSpinner() tea.Cmd {
	return m.schedule(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

func (m *Model) scheduleTimer(t *session.Timer) tea.Cmd {
	if t == nil {
		return nil
	}
	timer := *t
	return m.schedule(timer.After, func(time.Time) tea.Msg { return timerMsg{timer: timer} })
}

// View renders the model
func (m *Model) View() string {
	if !m.ready {
		return m.renderLoadingScreen()
	}
	if m.quitting {
		return m.renderGoodbyeScreen()
	}
	if m.alert != "" {
		return m.renderAlert()
	}
	if m.modal.open {
		return m.renderModelInfo()
	}
	return m.renderMain()
}

// Run runs the interactive classifier
func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
