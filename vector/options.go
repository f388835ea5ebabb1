package vector

// Config holds construction settings shared by the built-in classes.
type Config struct {
	// Capacity pre-allocates owned storage. Ignored by other classes.
	Capacity int

	// Registry resolves the class of new handles.
	Registry *Registry
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Capacity: 0,
		Registry: DefaultRegistry,
	}
}

// WithCapacity pre-allocates room for n elements in an owned vector.
func WithCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Capacity = n
		}
	}
}

// WithRegistry resolves classes from r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Registry = r
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
