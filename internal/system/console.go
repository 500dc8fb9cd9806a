package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// EnterDisplayMode hides the text console behind the framebuffer. Failures
// are logged and otherwise ignored: the count still goes to stdout.
// The returned func undoes whatever succeeded.
func EnterDisplayMode(l Logger) (restore func()) {
	graphics := logResult(l, "KD_GRAPHICS set", "KD_GRAPHICS failed", SetGraphicsMode()) == nil
	hidden := logResult(l, "cursor hidden", "hide cursor failed", HideCursor()) == nil

	return func() {
		if hidden {
			_ = logResult(l, "cursor shown", "show cursor failed", ShowCursor())
		}
		if graphics {
			_ = logResult(l, "KD_TEXT set", "KD_TEXT failed", RestoreTextMode())
		}
	}
}

func logResult(l Logger, ok, failed string, err error) error {
	if l == nil {
		return err
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
	} else {
		l.Infof("tty", "%s", ok)
	}
	return err
}
