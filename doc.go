// Package heap implements a generic ternary heap: a priority-queue container
// that keeps arbitrary elements ranked by a user-provided ordering function
// and gives efficient access to the best-ranked element.
//
// The heap is laid out as an implicit array tree where every node has up to
// three children (children of index i at 3i+1, 3i+2 and 3i+3; parent at
// (i-1)/3). Compared to a binary heap this shortens the tree for the same
// element count, and the contiguous buffer keeps the sift passes cache
// friendly. The buffer grows by a configurable factor when full.
//
// Key features:
//   - Generic implementation supporting any element type
//   - Ordering supplied as a plain comparison function, min- or max-heap by choice
//   - O(log n) insertion and extraction, O(1) peek
//   - O(n) bulk construction from an existing slice
//   - In-place priority updates via a match predicate
//   - Merging of heaps, deep cloning, and a non-mutating priority-order iterator
//
// Basic usage:
//
//	// Create a min-heap (smaller values rank closer to the root)
//	h, err := heap.New[int](func(a, b int) bool {
//	    return a < b
//	})
//	if err != nil {
//	    // nil ordering or invalid capacity/growth options
//	}
//
//	// Add elements
//	h.Push(5)
//	h.Push(3)
//	h.Push(7)
//
//	// Look at the best-ranked element
//	if v, ok := h.Peek(); ok {
//	    fmt.Println(v) // 3
//	}
//
//	// Drain in priority order
//	for h.Len() > 0 {
//	    v, _ := h.Pop()
//	    fmt.Println(v)
//	}
//
// The ordering function reports whether its first argument should sort closer
// to the root than its second. It is the only way the heap ever inspects an
// element, so any element type works, including types with no natural order.
//
// The heap is not safe for concurrent use; callers that share one across
// goroutines must synchronize around it.
package heap
