package cli

import (
	"strconv"
	"strings"

	"github.com/rook-computer/blastoff/internal/timer"
)

type Mode int

const (
	CountUp Mode = iota
	Countdown
	Server
)

func (m Mode) String() string {
	switch m {
	case CountUp:
		return "count-up"
	case Countdown:
		return "countdown"
	case Server:
		return "server"
	default:
		return "unknown"
	}
}

// Invocation is what the process was asked to do.
type Invocation struct {
	Mode  Mode
	Start int

	// Server mode only. Empty values fall back to the environment.
	Listen  string
	DevMode bool
}

// Direction reports the timer direction for counting modes.
func (inv Invocation) Direction() timer.Direction {
	if inv.Mode == Countdown {
		return timer.Down
	}
	return timer.Up
}

// Parse dispatches on the first argument. Unknown or missing arguments count
// up; the flag forms take the following argument as the start value.
func Parse(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{Mode: CountUp}
	}

	first := args[0]
	switch first {
	case "countdown":
		return Invocation{Mode: Countdown, Start: timer.DefaultStart}
	case "--countdown", "-cd":
		raw := ""
		if len(args) > 1 {
			raw = args[1]
		}
		return Invocation{Mode: Countdown, Start: ParseStart(raw)}
	case "server":
		return Invocation{Mode: Server}
	}

	for _, prefix := range []string{"--countdown=", "-cd="} {
		if strings.HasPrefix(first, prefix) {
			return Invocation{Mode: Countdown, Start: ParseStart(strings.TrimPrefix(first, prefix))}
		}
	}

	return Invocation{Mode: CountUp}
}

// ParseStart reads an optional sign and the leading decimal digits of raw,
// ignoring whatever follows. Anything without leading digits, or too large
// for an int, is 0.
func ParseStart(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
