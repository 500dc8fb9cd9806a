package timer

type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// DefaultStart is the countdown origin when none is supplied.
const DefaultStart = 10

// Counter is the single integer the loop owns. Its direction is fixed at creation.
type Counter struct {
	value     int
	direction Direction
}

// NewCounter creates a counter. Up counters always start at zero.
func NewCounter(direction Direction, start int) *Counter {
	if direction == Up {
		start = 0
	}
	return &Counter{value: start, direction: direction}
}

func (c *Counter) Value() int           { return c.value }
func (c *Counter) Direction() Direction { return c.direction }

// Continue reports whether another tick is due. Up counters never finish.
func (c *Counter) Continue() bool {
	return c.direction == Up || c.value > 0
}

// Step moves the counter by exactly one in its direction.
func (c *Counter) Step() {
	if c.direction == Up {
		c.value++
		return
	}
	c.value--
}
