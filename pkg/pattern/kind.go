package pattern

import (
	"fmt"
	"strings"
)

const (
	emailSource   = `^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`
	phoneBYSource = `^\+[0-9]{1,12}$`
	websiteSource = `((http|https)://)?(www\.)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,3}\.?(/.*)?`
)

type kindID uint8

const (
	kindCustom kindID = iota
	kindEmail
	kindPhoneBY
	kindWebsite
)

// Kind selects the expression Validate checks input against.
// The zero value is a custom kind with an empty expression, which never
// compiles.
type Kind struct {
	id  kindID
	raw string
}

var (
	// Email matches a whole address such as "name+tag@example.com".
	Email = Kind{id: kindEmail}
	// PhoneBY matches a "+" followed by 1 to 12 digits.
	PhoneBY = Kind{id: kindPhoneBY}
	// Website matches an optional http(s) scheme, optional "www." and a
	// dotted host with a 2-3 letter top-level domain. It is not anchored.
	Website = Kind{id: kindWebsite}
)

// Custom returns a Kind that uses raw verbatim.
func Custom(raw string) Kind {
	return Kind{id: kindCustom, raw: raw}
}

// Source returns the regular expression source for the kind.
func (k Kind) Source() string {
	switch k.id {
	case kindEmail:
		return emailSource
	case kindPhoneBY:
		return phoneBYSource
	case kindWebsite:
		return websiteSource
	default:
		return k.raw
	}
}

func (k Kind) String() string {
	switch k.id {
	case kindEmail:
		return "email"
	case kindPhoneBY:
		return "phone"
	case kindWebsite:
		return "website"
	default:
		return "custom"
	}
}

// ParseKind resolves a predefined kind by name. Accepted names are "email",
// "phone" (or "phone-by") and "website" (or "url"), case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "email":
		return Email, nil
	case "phone", "phone-by":
		return PhoneBY, nil
	case "website", "url":
		return Website, nil
	default:
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
