package timer

// Error is used for sentinel errors originating from the timer loop.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrAborted is returned by Loop.Run when its context is cancelled before
// the loop reaches a natural end.
const ErrAborted = Error("timer: launch aborted")
