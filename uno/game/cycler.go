package game

const (
	left  = -1
	right = 1
)

// Cycler walks a fixed seating list in either direction. Before the first Next
// the cursor sits just before seat 0 (right) or just after the last seat (left).
type Cycler struct {
	elements  []string
	current   int
	direction int
	started   bool
	turn      int
}

func NewCycler(elements []string) *Cycler {
	if len(elements) == 0 {
		panic("cycler: no elements")
	}
	return &Cycler{
		elements:  elements,
		current:   len(elements) - 1,
		direction: right,
	}
}

// Current returns the element last returned by Next; ok is false before that.
func (c *Cycler) Current() (string, bool) {
	if !c.started {
		return "", false
	}
	return c.elements[c.current], true
}

func (c *Cycler) First() string {
	return c.elements[0]
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + c.direction + elementCount) % elementCount
	c.started = true
	c.turn++
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
	if !c.started {
		c.current = c.anchor()
	}
}

// Direction is 1 when walking up the seating and -1 when walking down.
func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Reversed() bool {
	return c.direction == left
}

// Turn counts the calls to Next.
func (c *Cycler) Turn() int {
	return c.turn
}

func (c *Cycler) anchor() int {
	if c.direction == left {
		return 0
	}
	return len(c.elements) - 1
}
