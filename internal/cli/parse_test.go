package cli

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/blastoff/internal/timer"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Invocation
	}{
		{"no args", nil, Invocation{Mode: CountUp}},
		{"countdown", []string{"countdown"}, Invocation{Mode: Countdown, Start: 10}},
		{"countdown ignores rest", []string{"countdown", "3"}, Invocation{Mode: Countdown, Start: 10}},
		{"long flag", []string{"--countdown", "5"}, Invocation{Mode: Countdown, Start: 5}},
		{"short flag", []string{"-cd", "3"}, Invocation{Mode: Countdown, Start: 3}},
		{"flag with equals", []string{"--countdown=7"}, Invocation{Mode: Countdown, Start: 7}},
		{"flag without value", []string{"--countdown"}, Invocation{Mode: Countdown, Start: 0}},
		{"flag with word", []string{"-cd", "abc"}, Invocation{Mode: Countdown, Start: 0}},
		{"server", []string{"server"}, Invocation{Mode: Server}},
		{"unknown word", []string{"hello"}, Invocation{Mode: CountUp}},
		{"bare number", []string{"5"}, Invocation{Mode: CountUp}},
		{"other flag", []string{"-x"}, Invocation{Mode: CountUp}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.args))
		})
	}
}

func TestParseStart(t *testing.T) {
	assert.Equal(t, 5, ParseStart("5"))
	assert.Equal(t, 5, ParseStart("5abc"))
	assert.Equal(t, 12, ParseStart(" 12 "))
	assert.Equal(t, -3, ParseStart("-3"))
	assert.Equal(t, 4, ParseStart("+4"))
	assert.Equal(t, 2, ParseStart("2.9"))
	assert.Equal(t, 0, ParseStart("abc"))
	assert.Equal(t, 0, ParseStart(""))
	assert.Equal(t, 0, ParseStart("-"))
	assert.Equal(t, 0, ParseStart(strconv.Itoa(math.MaxInt)+"0"))
}

func TestInvocationDirection(t *testing.T) {
	assert.Equal(t, timer.Down, Invocation{Mode: Countdown}.Direction())
	assert.Equal(t, timer.Up, Invocation{Mode: CountUp}.Direction())
}
