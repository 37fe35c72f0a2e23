package search

// frontier is a LIFO stack of arena handles awaiting expansion.
// Pop order is the traversal order and therefore decides ties.
type frontier struct {
	items []int
}

func (f *frontier) push(h int) {
	f.items = append(f.items, h)
}

// pop removes and returns the most recently pushed handle.
// Callers check empty first.
func (f *frontier) pop() int {
	last := len(f.items) - 1
	h := f.items[last]
	f.items = f.items[:last]

	return h
}

func (f *frontier) empty() bool {
	return len(f.items) == 0
}

// reset empties the stack, keeping its capacity.
func (f *frontier) reset() {
	f.items = f.items[:0]
}
