package system

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type lines struct{ info, errs []string }

func (l *lines) Infof(component string, format string, args ...interface{}) {
	l.info = append(l.info, component+": "+fmt.Sprintf(format, args...))
}

func (l *lines) Errorf(component string, format string, args ...interface{}) {
	l.errs = append(l.errs, component+": "+fmt.Sprintf(format, args...))
}

func TestLogResult(t *testing.T) {
	l := &lines{}

	assert.NoError(t, logResult(l, "cursor hidden", "hide cursor failed", nil))
	err := logResult(l, "cursor hidden", "hide cursor failed", errors.New("no tty"))

	assert.EqualError(t, err, "no tty")
	assert.Equal(t, []string{"tty: cursor hidden"}, l.info)
	assert.Equal(t, []string{"tty: hide cursor failed: no tty"}, l.errs)
}

func TestEnterDisplayModeWithoutConsole(t *testing.T) {
	// There is normally no VT under test; restore must still be callable.
	restore := EnterDisplayMode(nil)
	assert.NotPanics(t, restore)
}
