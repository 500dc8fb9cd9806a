//go:build !linux

package system

import "github.com/pkg/errors"

var errNoConsole = errors.New("console mode switching is only supported on linux")

func SetGraphicsMode() error { return errNoConsole }
func RestoreTextMode() error { return errNoConsole }
func HideCursor() error      { return errNoConsole }
func ShowCursor() error      { return errNoConsole }
