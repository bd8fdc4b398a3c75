package props

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type a coerced value is forced to.
type Kind int

const (
	Number Kind = iota
	Bool
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Rule forces the value at Path to Kind.
type Rule struct {
	Path Path
	Kind Kind
}

// Coercer applies a fixed set of rules to property bags.
type Coercer struct {
	rules []Rule
}

// NewCoercer builds a Coercer from dotted path expressions. It panics
// on a malformed expression, since the tables are fixed at compile time.
func NewCoercer(numbers, bools []string) *Coercer {
	c := &Coercer{}
	for _, expr := range numbers {
		c.rules = append(c.rules, Rule{Path: MustParsePath(expr), Kind: Number})
	}
	for _, expr := range bools {
		c.rules = append(c.rules, Rule{Path: MustParsePath(expr), Kind: Bool})
	}
	return c
}

// Rules returns the coercion rules in the order they are applied.
func (c *Coercer) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Apply returns a copy of b with every value reachable through a rule's
// path converted to the rule's kind. Paths that do not exist in b are
// skipped, as are wildcards over something other than a sequence. Values
// already of the right type are left alone, so Apply is idempotent.
func (c *Coercer) Apply(b Bag) (Bag, error) {
	out := b.Clone()
	if out == nil {
		out = Bag{}
	}
	for _, r := range c.rules {
		if len(r.Path) == 0 {
			continue
		}
		if err := coerceAt(map[string]any(out), r.Path, r.Kind, nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// coerceAt walks container along path, rewriting the leaf in place.
// trail records the concrete keys and indexes visited for error messages.
func coerceAt(container any, path Path, kind Kind, trail []string) error {
	seg := path[0]
	last := len(path) == 1

	if seg.Wildcard {
		list, ok := container.([]any)
		if !ok {
			return nil
		}
		for i := range list {
			t := append(trail, strconv.Itoa(i))
			if last {
				v, err := coerceValue(list[i], kind, t)
				if err != nil {
					return err
				}
				list[i] = v
				continue
			}
			if err := coerceAt(list[i], path[1:], kind, t); err != nil {
				return err
			}
		}
		return nil
	}

	m, ok := asMap(container)
	if !ok {
		return nil
	}
	child, ok := m[seg.Key]
	if !ok || child == nil {
		return nil
	}
	t := append(trail, seg.Key)
	if last {
		v, err := coerceValue(child, kind, t)
		if err != nil {
			return err
		}
		m[seg.Key] = v
		return nil
	}
	return coerceAt(child, path[1:], kind, t)
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Bag:
		return map[string]any(t), true
	}
	return nil, false
}

func coerceValue(v any, kind Kind, trail []string) (any, error) {
	s, ok := v.(string)
	if !ok {
		// non-strings are left for the remote API to judge
		return v, nil
	}
	switch kind {
	case Number:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("property %s: cannot parse %q as a number", strings.Join(trail, "."), s)
		}
		return n, nil
	case Bool:
		bv, err := ParseYAMLBool(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", strings.Join(trail, "."), err)
		}
		return bv, nil
	}
	return v, nil
}
