package defk

// Option configures an adapter at construction time.
type Option func(*config)

type config struct {
	alias    string
	defaults map[string]any
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithAlias makes the named parameter receive the whole input mapping
// instead of a looked-up value. The target must declare that parameter.
// An empty name means no alias.
func WithAlias(name string) Option {
	return func(c *config) { c.alias = name }
}

// WithDefault declares value as the default of the named parameter,
// overriding any default declared by the target itself.
func WithDefault(name string, value any) Option {
	return func(c *config) {
		if c.defaults == nil {
			c.defaults = make(map[string]any)
		}
		c.defaults[name] = value
	}
}
