//go:build !linux

package system

import "context"

// WatchAbortKey needs evdev and only logs elsewhere.
func WatchAbortKey(ctx context.Context, logger Logger, onAbort func()) {
	if logger != nil {
		logger.Infof("input", "abort key is not supported on this platform")
	}
}
