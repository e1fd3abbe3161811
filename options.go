package heap

// options defines all configuration options for a heap.
type options struct {
	capacity int     // Initial buffer capacity
	growth   float64 // Multiplier applied to the capacity when the buffer is full
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithInitialCapacity sets the initial buffer capacity. It must not be
// negative; zero is allowed and grows on the first push.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity when the
// buffer is full. It must be greater than 1.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growth = f
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 10,
		growth:   2,
	}
}
