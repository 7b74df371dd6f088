package session

// State is the active result view. Exactly one is active at a time.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// TimerKind identifies what a scheduled timer does when it fires
type TimerKind int

const (
	// TimerErrorRevert returns the error view to empty
	TimerErrorRevert TimerKind = iota
	// TimerCopyConfirm clears the "Copied!" confirmation
	TimerCopyConfirm
)

func (k TimerKind) String() string {
	if k == TimerCopyConfirm {
		return "copy-confirm"
	}
	return "error-revert"
}
