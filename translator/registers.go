package translator

// DefaultRegisterQueue is the rotation used when none is configured: input to
// R0, set R1, then operate on R0 and R1.
var DefaultRegisterQueue = []uint8{0, 1, 0}

// RegisterAllocator hands out registers to operand slots in round-robin order.
// It does not track liveness. One allocator serves exactly one translation.
type RegisterAllocator struct {
	queue  []uint8
	cursor int
}

func NewRegisterAllocator(queue []uint8) *RegisterAllocator {
	if len(queue) == 0 {
		queue = DefaultRegisterQueue
	}
	q := make([]uint8, len(queue))
	copy(q, queue)
	return &RegisterAllocator{queue: q}
}

func (a *RegisterAllocator) Next() uint8 {
	reg := a.queue[a.cursor%len(a.queue)]
	a.cursor++
	return reg
}

// Allocated is the number of registers handed out so far.
func (a *RegisterAllocator) Allocated() int {
	return a.cursor
}
