// Package pattern validates and searches strings with regular expressions.
//
// Validate checks input against a predefined Kind (Email, PhoneBY, Website) or
// a caller-supplied expression built with Custom. Matches returns every
// non-overlapping match of an expression. Both are fail-soft: an expression
// that does not compile yields false or an empty slice, and the compile error
// is logged at WARN through log/slog. Compile is the fail-explicit variant.
//
// Expressions are case-insensitive unless CaseSensitive or WithFlags says
// otherwise. Compiled expressions are cached for the lifetime of the process.
//
//	if pattern.Validate("user@example.com", pattern.Email) {
//		// ...
//	}
//	links := pattern.Matches(text, `https?://\S+`)
//
// LuhnValid checks card number checksums and QueryItems extracts query
// parameters from an http(s) URL.
package pattern
