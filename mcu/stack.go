package mcu

const (
	STACK_DEPTH = 2 // Hardware return stack depth.
)

// Stack is the two-level hardware return stack. It is a circular buffer:
// pushing beyond the depth silently overwrites the oldest entry, and
// popping beyond the depth returns stale data. Neither is an error; both
// reproduce documented hardware behavior.
type Stack struct {
	slot [STACK_DEPTH]uint16
	top  int
}

// Push saves a return address, overwriting the oldest entry when full.
func (s *Stack) Push(pc uint16) {
	s.top = (s.top + 1) % STACK_DEPTH
	s.slot[s.top] = pc
}

// Pop returns the most recently pushed address. Popping an over-popped
// stack wraps around and yields whatever the slots still hold.
func (s *Stack) Pop() (pc uint16) {
	pc = s.slot[s.top]
	s.top = (s.top + STACK_DEPTH - 1) % STACK_DEPTH
	return
}

// Frames returns a snapshot of the stack slots, most recent first.
func (s *Stack) Frames() (frames []uint16) {
	frames = make([]uint16, 0, STACK_DEPTH)
	for n := range STACK_DEPTH {
		frames = append(frames, s.slot[(s.top+STACK_DEPTH-n)%STACK_DEPTH])
	}
	return
}

// Reset clears the stack slots.
func (s *Stack) Reset() {
	clear(s.slot[:])
	s.top = 0
}
