package heap_test

import (
	"fmt"

	"github.com/gtms/heap"
)

// ExampleNew demonstrates using the heap as a min-heap.
func ExampleNew() {
	// Create a min-heap (smaller values rank closer to the root)
	h, err := heap.New[int](func(a, b int) bool {
		return a < b
	})
	if err != nil {
		panic(err)
	}

	h.Push(5)
	h.Push(3)
	h.Push(7)

	// Peek at the best-ranked element
	if v, ok := h.Peek(); ok {
		fmt.Println("peek:", v)
	}

	// Pop elements in priority order
	for h.Len() > 0 {
		v, _ := h.Pop()
		fmt.Println("pop:", v)
	}

	// Output:
	// peek: 3
	// pop: 3
	// pop: 5
	// pop: 7
}

// ExampleNew_maxHeap demonstrates using the heap as a max-heap.
func ExampleNew_maxHeap() {
	// Larger values rank closer to the root
	h, err := heap.New[int](func(a, b int) bool {
		return a > b
	})
	if err != nil {
		panic(err)
	}

	h.Push(10)
	h.Push(20)
	h.Push(15)

	for h.Len() > 0 {
		v, _ := h.Pop()
		fmt.Println(v)
	}

	// Output:
	// 20
	// 15
	// 10
}

// ExampleNew_customType demonstrates ordering custom struct elements.
func ExampleNew_customType() {
	type Task struct {
		Priority int
		Name     string
	}

	// Order tasks by priority
	h, err := heap.New[Task](func(a, b Task) bool {
		return a.Priority < b.Priority
	})
	if err != nil {
		panic(err)
	}

	h.Push(Task{Priority: 2, Name: "Low priority"})
	h.Push(Task{Priority: 1, Name: "High priority"})

	for h.Len() > 0 {
		task, _ := h.Pop()
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}

// ExampleNewFromSlice demonstrates the O(n) bulk build.
func ExampleNewFromSlice() {
	h, err := heap.NewFromSlice([]int{9, 4, 7, 1, 8}, func(a, b int) bool {
		return a < b
	})
	if err != nil {
		panic(err)
	}

	for h.Len() > 0 {
		v, _ := h.Pop()
		fmt.Println(v)
	}

	// Output:
	// 1
	// 4
	// 7
	// 8
	// 9
}

// ExampleHeap_Modify demonstrates an in-place priority update.
func ExampleHeap_Modify() {
	h, err := heap.NewFromSlice([]int{5, 3, 8, 1}, func(a, b int) bool {
		return a < b
	})
	if err != nil {
		panic(err)
	}

	// Replace the element equal to 8 with 0, promoting it to the root
	h.Modify(func(v int) bool { return v == 8 }, 0)

	for h.Len() > 0 {
		v, _ := h.Pop()
		fmt.Println(v)
	}

	// Output:
	// 0
	// 1
	// 3
	// 5
}

// ExampleHeap_Merge demonstrates merging heaps into a new one.
func ExampleHeap_Merge() {
	less := func(a, b int) bool { return a < b }

	a, err := heap.NewFromSlice([]int{2, 9}, less)
	if err != nil {
		panic(err)
	}
	b, err := heap.NewFromSlice([]int{1, 4}, less)
	if err != nil {
		panic(err)
	}

	// Merging never mutates the inputs
	m := a.Merge(b)

	for m.Len() > 0 {
		v, _ := m.Pop()
		fmt.Println(v)
	}
	fmt.Println("a:", a.Len(), "b:", b.Len())

	// Output:
	// 1
	// 2
	// 4
	// 9
	// a: 2 b: 2
}

// ExampleHeap_All demonstrates iterating in priority order without draining
// the heap.
func ExampleHeap_All() {
	h, err := heap.NewFromSlice([]int{5, 3, 8}, func(a, b int) bool {
		return a < b
	})
	if err != nil {
		panic(err)
	}

	for v := range h.All() {
		fmt.Println(v)
	}

	// The heap itself is untouched
	fmt.Println("len:", h.Len())

	// Output:
	// 3
	// 5
	// 8
	// len: 3
}
