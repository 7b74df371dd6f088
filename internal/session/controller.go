package session

import (
	"time"

	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/view"
)

// Default timer lifetimes
const (
	DefaultErrorTimeout = 5 * time.Second
	DefaultCopyTimeout  = 2 * time.Second
)

// Timer is a scheduled task created by a transition. It is only honoured by
// Expire if no later transition of the same family has happened since.
type Timer struct {
	Kind  TimerKind
	Token uint64
	After time.Duration
}

// Controller owns the result-view state and the current prediction. All
// mutation goes through its transition methods; it is not safe for concurrent
// use and is meant to be driven from a single event loop.
type Controller struct {
	state   State
	busy    bool
	errMsg  string
	current *classify.Prediction

	// epoch advances on every view transition; copyEpoch on every copy
	epoch     uint64
	copyEpoch uint64
	copied    bool

	errorTimeout time.Duration
	copyTimeout  time.Duration
}

// Option configures a Controller
type Option func(*Controller)

// WithErrorTimeout sets how long the error view stays before reverting
func WithErrorTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.errorTimeout = d
		}
	}
}

// WithCopyTimeout sets how long the copy confirmation is shown
func WithCopyTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.copyTimeout = d
		}
	}
}

// NewController creates a controller in the empty state
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:        StateEmpty,
		errorTimeout: DefaultErrorTimeout,
		copyTimeout:  DefaultCopyTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the active view
func (c *Controller) State() State { return c.state }

// Busy reports whether a prediction is in flight
func (c *Controller) Busy() bool { return c.busy }

// ErrorMessage returns the message shown by the error view
func (c *Controller) ErrorMessage() string { return c.errMsg }

// Current returns the last successfully rendered prediction, or nil
func (c *Controller) Current() *classify.Prediction { return c.current }

// Copied reports whether the copy confirmation is showing
func (c *Controller) Copied() bool { return c.copied }

// Begin validates text and enters the loading view. On validation failure it
// enters the error view instead and returns the validation error together
// with the revert timer; no request must be made in that case.
func (c *Controller) Begin(text string) (string, *Timer, error) {
	trimmed, err := classify.Validate(text)
	if err != nil {
		return "", c.Fail(classify.UserMessage(err, classify.MsgUnknownError)), err
	}

	c.transition(StateLoading)
	c.errMsg = ""
	c.busy = true
	return trimmed, nil, nil
}

// Succeed stores p as the current prediction and enters the success view
func (c *Controller) Succeed(p *classify.Prediction) {
	c.current = p
	c.errMsg = ""
	c.transition(StateSuccess)
}

// Fail enters the error view with msg and returns the timer that reverts it
func (c *Controller) Fail(msg string) *Timer {
	c.errMsg = msg
	c.transition(StateError)
	return &Timer{Kind: TimerErrorRevert, Token: c.epoch, After: c.errorTimeout}
}

// Finish releases the busy flag. It must run on every exit path of a prediction.
func (c *Controller) Finish() {
	c.busy = false
}

// Clear drops the current prediction and returns to the empty view
func (c *Controller) Clear() {
	c.current = nil
	c.errMsg = ""
	c.transition(StateEmpty)
}

// CopyText returns the clipboard text for the current prediction.
// ok is false when there is nothing to copy.
func (c *Controller) CopyText() (text string, ok bool) {
	if c.current == nil {
		return "", false
	}
	return view.CopyText(c.current), true
}

// CopySucceeded shows the copy confirmation and returns the timer that hides it
func (c *Controller) CopySucceeded() *Timer {
	c.copyEpoch++
	c.copied = true
	return &Timer{Kind: TimerCopyConfirm, Token: c.copyEpoch, After: c.copyTimeout}
}

// Expire runs a timer. It reports whether the timer was still current and
// therefore changed state; stale timers are ignored.
func (c *Controller) Expire(t Timer) bool {
	switch t.Kind {
	case TimerErrorRevert:
		if t.Token != c.epoch || c.state != StateError {
			return false
		}
		c.errMsg = ""
		c.transition(StateEmpty)
		return true
	case TimerCopyConfirm:
		if t.Token != c.copyEpoch || !c.copied {
			return false
		}
		c.copied = false
		return true
	default:
		return false
	}
}

func (c *Controller) transition(to State) {
	c.epoch++
	c.state = to
}
