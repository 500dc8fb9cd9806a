//go:build !unix

package system

import "os"

var interruptSignals = []os.Signal{os.Interrupt}
