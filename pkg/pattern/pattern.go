package pattern

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/strkit/pkg/logger"
)

// Compile compiles src with the given options, returning the error that
// Validate and Matches swallow. The result is shared through a process-wide
// cache and is safe for concurrent use.
func Compile(src string, opts ...Option) (*regexp.Regexp, error) {
	return newOptions(opts).compile(src)
}

func (o *options) compile(src string) (*regexp.Regexp, error) {
	if src == "" {
		return nil, ErrEmptyPattern
	}
	re, err := compileCached(o.source(src))
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %q: %w", src, err)
	}
	return re, nil
}

// Validate reports whether input contains a match for kind. Anchored kinds
// such as Email require the whole input to match; unanchored ones such as
// Website accept a match anywhere. An expression that fails to compile yields
// false.
func Validate(input string, kind Kind, opts ...Option) bool {
	o := newOptions(opts)
	src := kind.Source()
	re, err := o.compile(src)
	if err != nil {
		o.logger.Warn("pattern compile failed",
			logger.Component("pattern"),
			slog.String("kind", kind.String()),
			logger.Pattern(src),
			logger.Error(err),
		)
		return false
	}
	return re.MatchString(input)
}

// Matches returns every non-overlapping match of raw in input, in order.
// The result is never nil: no matches and compile failures both give an
// empty slice.
func Matches(input, raw string, opts ...Option) []string {
	o := newOptions(opts)
	re, err := o.compile(raw)
	if err != nil {
		o.logger.Warn("pattern compile failed",
			logger.Component("pattern"),
			logger.Pattern(raw),
			logger.Error(err),
		)
		return []string{}
	}

	found := re.FindAllString(input, -1)
	if found == nil {
		return []string{}
	}
	return found
}
