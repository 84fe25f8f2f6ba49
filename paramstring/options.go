package paramstring

import "log/slog"

// Option configures Parse, New and SetDefaultDelimiters.
type Option func(*config)

type config struct {
	open   *string
	close  *string
	escape *string
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// delimiters merges the explicitly set tokens over base.
func (cfg config) delimiters(base Delimiters) Delimiters {
	if cfg.open != nil {
		base.Open = *cfg.open
	}

	if cfg.close != nil {
		base.Close = *cfg.close
	}

	if cfg.escape != nil {
		base.Escape = *cfg.escape
	}

	return base
}

// WithOpen sets the token that opens a placeholder.
func WithOpen(open string) Option {
	return func(cfg *config) { cfg.open = &open }
}

// WithClose sets the token that closes a placeholder.
func WithClose(closeTok string) Option {
	return func(cfg *config) { cfg.close = &closeTok }
}

// WithEscape sets the token that escapes a placeholder.
func WithEscape(escape string) Option {
	return func(cfg *config) { cfg.escape = &escape }
}

// WithDelimiters sets all three tokens at once.
func WithDelimiters(de Delimiters) Option {
	return func(cfg *config) {
		cfg.open = &de.Open
		cfg.close = &de.Close
		cfg.escape = &de.Escape
	}
}

// WithLogger sets the logger receiving unknown parameter
// warnings. slog.Default() is used when unset.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// DelimiterOptions returns options for the non-empty tokens;
// empty ones are left to the defaults. It suits flag values
// where "" means unset.
func DelimiterOptions(open, closeTok, escape string) []Option {
	var opts []Option

	if open != "" {
		opts = append(opts, WithOpen(open))
	}

	if closeTok != "" {
		opts = append(opts, WithClose(closeTok))
	}

	if escape != "" {
		opts = append(opts, WithEscape(escape))
	}

	return opts
}
