package guidefmt

// Option configures parsing and formatting behavior.
type Option func(*config)

type config struct {
	backfill bool
}

func newConfig(opts []Option) config {
	cfg := config{backfill: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithoutBackfill leaves navigation links exactly as declared, skipping
// the default-fill passes. Useful to inspect what a document states
// explicitly.
func WithoutBackfill() Option {
	return func(cfg *config) {
		cfg.backfill = false
	}
}
