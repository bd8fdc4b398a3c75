// Package props handles the loosely typed property bags CloudFormation
// hands to custom resources. Every scalar in a template arrives as a
// string, so values that the remote API expects as numbers or booleans
// have to be coerced before the bag can be decoded into a typed request.
package props

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// ServiceTokenKey is added to every custom resource's properties by
// CloudFormation. It names the Lambda function, not the resource, so it
// is dropped when a Bag is parsed.
const ServiceTokenKey = "ServiceToken"

// Bag is a resource property bag: a tree of maps, slices and scalars as
// produced by encoding/json.
type Bag map[string]any

// ParseBag decodes raw resource properties. Empty input yields an empty
// Bag. Numbers are kept as json.Number so that large integers survive a
// round trip untouched.
func ParseBag(raw json.RawMessage) (Bag, error) {
	b := Bag{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return b, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("could not parse resource properties: %w", err)
	}
	if b == nil {
		// a literal JSON null
		b = Bag{}
	}
	delete(b, ServiceTokenKey)
	return b, nil
}

// String returns the value at key if it is a string, or "".
func (b Bag) String(key string) string {
	s, _ := b[key].(string)
	return s
}

// Name returns the "name" property, which is the physical id of both
// Lex resource types.
func (b Bag) Name() string {
	return b.String("name")
}

// Checksum returns the "checksum" property, or "" if unset.
func (b Bag) Checksum() string {
	return b.String("checksum")
}

// Clone returns a deep copy of b. Coercion and checksum merging work on
// copies so the caller's bag is never modified.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}
	return cloneValue(map[string]any(b)).(map[string]any)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Bag:
		return Bag(cloneValue(map[string]any(t)).(map[string]any))
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

// Equal reports whether two bags hold the same properties.
func (b Bag) Equal(other Bag) bool {
	if len(b) == 0 && len(other) == 0 {
		return true
	}
	return reflect.DeepEqual(b, other)
}

// Decode re-encodes the bag and unmarshals it into v. encoding/json
// matches keys case-insensitively, so lowerCamel template properties
// land on the exported fields of an SDK input struct. Unknown keys are
// ignored.
func (b Bag) Decode(v any) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("could not encode properties: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("properties do not match %T: %w", v, err)
	}
	return nil
}
