package props

import (
	"fmt"
	"strings"
)

// Wildcard is the path segment that addresses every element of a sequence.
const Wildcard = "*"

// Segment is one step of a Path: either a literal map key or a wildcard
// over the elements of a sequence.
type Segment struct {
	Key      string
	Wildcard bool
}

// Path addresses values inside a Bag, such as "slots.*.priority".
type Path []Segment

// ParsePath splits a dotted path expression into segments. A segment
// consisting solely of "*" becomes a wildcard. Empty expressions and
// empty segments, as in "a..b", are rejected.
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty path expression")
	}
	parts := strings.Split(expr, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("path %q: empty segment at position %d", expr, i)
		}
		if part == Wildcard {
			p[i] = Segment{Wildcard: true}
		} else {
			p[i] = Segment{Key: part}
		}
	}
	return p, nil
}

// MustParsePath is ParsePath for static path tables. It panics on a
// malformed expression.
func MustParsePath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		if s.Wildcard {
			parts[i] = Wildcard
		} else {
			parts[i] = s.Key
		}
	}
	return strings.Join(parts, ".")
}
