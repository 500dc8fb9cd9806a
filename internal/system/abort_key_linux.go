//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// linux input-event-codes.h
	keyEsc = 1
)

// WatchAbortKey watches evdev keyboards under /dev/input and calls onAbort
// once when Escape is pressed. It lets a launch shown on the framebuffer be
// aborted without a terminal attached.
//
// It is best-effort: without readable input devices it logs and returns.
func WatchAbortKey(ctx context.Context, logger Logger, onAbort func()) {
	if onAbort == nil {
		return
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for abort key")
		}
		return
	}

	var once sync.Once
	trigger := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "escape pressed: aborting")
			}
			onAbort()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, trigger)
	}
}

func watchDevice(ctx context.Context, path string, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	tvSize := binary.Size(unix.Timeval{})
	buf := make([]byte, 4096)

	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if keyPressed(buf[:n], tvSize, keyEsc) {
			trigger()
			return
		}
	}
}

// keyPressed scans a run of input_event records (timeval, u16 type, u16 code,
// s32 value) for a key-down of code.
func keyPressed(buf []byte, tvSize int, code uint16) bool {
	eventSize := tvSize + 8
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		c := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && c == code && value == 1 {
			return true
		}
	}
	return false
}
