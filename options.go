package comap

import "runtime"

// config holds the configuration recognised at construction time.
type config struct {
	maxLoadFactor float64
	maxWorkers    int
	sizeHint      int
}

func defaultConfig() config {
	return config{
		maxLoadFactor: 1.0,
		maxWorkers:    runtime.GOMAXPROCS(0),
	}
}

// Option configures a new Map or Set at construction time.
type Option func(*config)

// WithMaxLoadFactor sets the load factor (size / bucket count) that
// triggers automatic growth after an insert. The default is 1.0.
// Non-positive values are ignored.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		if f > 0 {
			c.maxLoadFactor = f
		}
	}
}

// WithMaxWorkers overrides the worker-count upper bound used to size the
// segment lock array (segmentsPerWorker * workers) and to bound the
// fan-out of the bulk-traversal and rehash engines. The default is
// runtime.GOMAXPROCS(0), read once at construction. Values less than 1
// are ignored.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxWorkers = n
		}
	}
}

// WithPresize reserves capacity for at least sizeHint keys at
// construction, equivalent to an immediate Reserve call. Non-positive
// values are ignored.
func WithPresize(sizeHint int) Option {
	return func(c *config) {
		if sizeHint > 0 {
			c.sizeHint = sizeHint
		}
	}
}
