package pattern

import (
	"log/slog"
	"regexp"
)

// Flag alters how an expression is compiled.
type Flag uint8

const (
	// CaseInsensitive makes letters match regardless of case.
	CaseInsensitive Flag = 1 << iota
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
	// DotMatchesNewline lets . match \n.
	DotMatchesNewline
	// IgnoreMetacharacters treats the whole expression as a literal.
	IgnoreMetacharacters
)

// DefaultFlags are applied when no WithFlags or CaseSensitive option is given.
const DefaultFlags = CaseInsensitive

// Has reports whether every bit of f2 is set in f.
func (f Flag) Has(f2 Flag) bool {
	return f&f2 == f2
}

type options struct {
	flags  Flag
	logger *slog.Logger
}

// Option configures Validate, Matches and Compile.
type Option func(*options)

// WithFlags replaces the default flags.
func WithFlags(flags Flag) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// CaseSensitive clears CaseInsensitive, keeping any other flags.
func CaseSensitive() Option {
	return func(o *options) {
		o.flags &^= CaseInsensitive
	}
}

// WithLogger sets the logger used to report compile failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{flags: DefaultFlags}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// source applies flags to src, producing the expression handed to regexp.
func (o *options) source(src string) string {
	if o.flags.Has(IgnoreMetacharacters) {
		src = regexp.QuoteMeta(src)
	}

	prefix := make([]byte, 0, 6)
	if o.flags.Has(CaseInsensitive) {
		prefix = append(prefix, 'i')
	}
	if o.flags.Has(Multiline) {
		prefix = append(prefix, 'm')
	}
	if o.flags.Has(DotMatchesNewline) {
		prefix = append(prefix, 's')
	}
	if len(prefix) == 0 {
		return src
	}
	return "(?" + string(prefix) + ")" + src
}
