package heap

import (
	"errors"
	"iter"
)

var (
	// ErrNilOrdering is returned when a heap is constructed without an
	// ordering function.
	ErrNilOrdering = errors.New("heap: ordering function is required")
	// ErrInvalidCapacity is returned when the initial capacity is negative.
	ErrInvalidCapacity = errors.New("heap: initial capacity must not be negative")
	// ErrInvalidGrowthFactor is returned when the growth factor is not
	// greater than 1, which would make a full buffer grow forever.
	ErrInvalidGrowthFactor = errors.New("heap: growth factor must be greater than 1")
)

// Heap is a ternary heap over a growable contiguous buffer. Elements are
// ranked by a caller-supplied ordering function; the best-ranked element is
// always at the root. The zero value is not usable, use New or NewFromSlice.
//
// The tree is implicit: the children of index i live at 3i+1, 3i+2 and 3i+3,
// and the parent of index i at (i-1)/3. Indices [0, n) of the buffer hold
// live elements, the rest of the buffer is zeroed spare capacity.
type Heap[E any] struct {
	buf    []E // len(buf) is the current capacity
	n      int // count of live elements
	less   func(a, b E) bool
	growth float64
}

// New creates an empty heap ordered by less, which must report whether a
// should sort closer to the root than b. Capacity and growth behaviour can be
// adjusted with WithInitialCapacity and WithGrowthFactor.
func New[E any](less func(a, b E) bool, opts ...Option) (*Heap[E], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if less == nil {
		return nil, ErrNilOrdering
	}
	if o.capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if o.growth <= 1 {
		return nil, ErrInvalidGrowthFactor
	}

	return &Heap[E]{
		buf:    make([]E, o.capacity),
		less:   less,
		growth: o.growth,
	}, nil
}

// NewFromSlice builds a heap from an existing slice of elements, taking
// ownership of the slice as the heap's buffer. The heap property is
// established in O(n) by sifting down every internal node bottom-up, which is
// cheaper than pushing the elements one at a time. WithInitialCapacity has no
// effect here: the capacity is the length of the slice.
func NewFromSlice[E any](elements []E, less func(a, b E) bool, opts ...Option) (*Heap[E], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if less == nil {
		return nil, ErrNilOrdering
	}
	if o.growth <= 1 {
		return nil, ErrInvalidGrowthFactor
	}

	h := &Heap[E]{
		buf:    elements,
		n:      len(elements),
		less:   less,
		growth: o.growth,
	}
	h.init()
	return h, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return h.n
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[E]) IsEmpty() bool {
	return h.n == 0
}

// Ordering returns the ordering function the heap was built with.
func (h *Heap[E]) Ordering() func(a, b E) bool {
	return h.less
}

// Peek returns the best-ranked element without removing it. It returns false
// if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if h.n == 0 {
		var zero E
		return zero, false
	}
	return h.buf[0], true
}

// Push inserts v and returns it, so calls can be chained. Insertion is
// O(log n) amortized; when the buffer is full it is reallocated at
// capacity × growth factor first, an O(n) copy.
func (h *Heap[E]) Push(v E) E {
	if h.n == len(h.buf) {
		h.grow()
	}
	h.buf[h.n] = v
	h.n++
	h.up(h.n - 1)
	return v
}

// Pop removes and returns the best-ranked element. It returns false if the
// heap is empty. O(log n).
func (h *Heap[E]) Pop() (E, bool) {
	var zero E
	if h.n == 0 {
		return zero, false
	}

	root := h.buf[0]
	h.n--
	if h.n == 0 {
		h.buf[0] = zero
		return root, true
	}

	// Move the last live element to the root, zero the vacated slot so the
	// buffer does not pin the value, and restore the heap property.
	h.buf[0] = h.buf[h.n]
	h.buf[h.n] = zero
	h.down(0)
	return root, true
}

// Modify replaces the first element, in storage order, for which match
// returns true with v, then restores the heap property around the slot.
// It reports whether a match was found.
//
// Storage order has no relation to priority order: when several elements
// match, which one is replaced depends on where the heap happens to have
// placed them. Callers that need a specific element must supply a predicate
// that identifies it uniquely. The scan is O(n).
func (h *Heap[E]) Modify(match func(E) bool, v E) bool {
	for i := 0; i < h.n; i++ {
		if !match(h.buf[i]) {
			continue
		}
		old := h.buf[i]
		h.buf[i] = v
		// The replacement can violate the heap property in only one
		// direction: up when the new value outranks the old, down
		// otherwise.
		if h.less(v, old) {
			h.up(i)
		} else {
			h.down(i)
		}
		return true
	}
	return false
}

// Merge returns a new heap holding the elements of h and all others, built
// with h's ordering function and growth factor. The inputs are not mutated.
// Other heaps' ordering functions are not consulted: their elements are
// simply reinterpreted under h's ordering. O(total n).
func (h *Heap[E]) Merge(others ...*Heap[E]) *Heap[E] {
	total := h.n
	for _, o := range others {
		total += o.n
	}

	buf := make([]E, 0, total)
	buf = append(buf, h.buf[:h.n]...)
	for _, o := range others {
		buf = append(buf, o.buf[:o.n]...)
	}

	merged := &Heap[E]{
		buf:    buf,
		n:      total,
		less:   h.less,
		growth: h.growth,
	}
	merged.init()
	return merged
}

// Clear discards all elements, zeroing the live slots, and returns the number
// of elements discarded. Capacity is kept.
func (h *Heap[E]) Clear() int {
	prior := h.n
	clear(h.buf[:h.n])
	h.n = 0
	return prior
}

// Clone returns a deep structural copy of the heap: same elements in the same
// slot layout, same capacity, same ordering function and growth factor.
// Mutations of either heap never affect the other.
func (h *Heap[E]) Clone() *Heap[E] {
	buf := make([]E, len(h.buf))
	copy(buf, h.buf[:h.n])
	return &Heap[E]{
		buf:    buf,
		n:      h.n,
		less:   h.less,
		growth: h.growth,
	}
}

// All returns an iterator over the heap's elements in priority order, best
// first. Each iteration drains a private clone, so the heap itself is never
// mutated and the sequence reflects the heap's state when the iteration
// starts. Setup is O(n), each step O(log n).
func (h *Heap[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		c := h.Clone()
		for {
			v, ok := c.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// init establishes the heap property over the live prefix by sifting down
// from the deepest parent index to the root.
func (h *Heap[E]) init() {
	for i := (h.n - 1) / 3; i >= 0; i-- {
		h.down(i)
	}
}

// grow reallocates the buffer at capacity × growth factor, copying the live
// elements. The capacity is bumped by at least one slot so growth makes
// progress even when the product rounds back to the current capacity.
func (h *Heap[E]) grow() {
	newCap := int(float64(len(h.buf)) * h.growth)
	if newCap <= len(h.buf) {
		newCap = len(h.buf) + 1
	}
	buf := make([]E, newCap)
	copy(buf, h.buf[:h.n])
	h.buf = buf
}

// up moves the element at index i toward the root while it outranks its
// parent.
func (h *Heap[E]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 3
		if !h.less(h.buf[i], h.buf[parent]) {
			break
		}
		h.buf[i], h.buf[parent] = h.buf[parent], h.buf[i]
		i = parent
	}
}

// down moves the element at index i toward the leaves while any of its up to
// three children outranks it, descending into the best-ranked child. Ties
// between equally ranked children fall to the earliest one scanned; that is
// an artifact of the strict comparison, not a contract.
func (h *Heap[E]) down(i int) {
	for {
		best := i
		first := 3*i + 1
		for c := first; c < first+3 && c < h.n; c++ {
			if h.less(h.buf[c], h.buf[best]) {
				best = c
			}
		}
		if best == i {
			return
		}
		h.buf[i], h.buf[best] = h.buf[best], h.buf[i]
		i = best
	}
}
