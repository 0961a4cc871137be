package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/regup-org/regup/internal/domain"
	"github.com/samber/lo"
)

// Variant classifies how a contract deployment was produced on a chain.
type Variant string

const (
	VariantCanonical Variant = "canonical"
	VariantEIP155    Variant = "eip155"
	VariantZkSync    Variant = "zksync"
)

// KnownVariants lists every recognized deployment variant.
var KnownVariants = []Variant{VariantCanonical, VariantEIP155, VariantZkSync}

// ParseVariant validates a variant string against the recognized tags.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !lo.Contains(KnownVariants, v) {
		return "", fmt.Errorf("%w: %q (valid: canonical, eip155, zksync)", domain.ErrInvalidVariant, s)
	}
	return v, nil
}

// VariantEntry is the value a chain maps to inside networkAddresses: either
// a single variant tag or a set of distinct tags. It serializes as a JSON
// string in the single case and as a JSON array otherwise.
type VariantEntry struct {
	tags     []Variant
	multiple bool
}

// SingleVariant builds a scalar entry.
func SingleVariant(v Variant) VariantEntry {
	return VariantEntry{tags: []Variant{v}}
}

// MultiVariant builds a set entry from the given tags.
func MultiVariant(tags ...Variant) VariantEntry {
	return VariantEntry{tags: tags, multiple: true}
}

// Single returns the scalar tag and true when the entry is a single variant.
func (e VariantEntry) Single() (Variant, bool) {
	if e.multiple || len(e.tags) != 1 {
		return "", false
	}
	return e.tags[0], true
}

// Tags returns a copy of the entry's tags.
func (e VariantEntry) Tags() []Variant {
	out := make([]Variant, len(e.tags))
	copy(out, e.tags)
	return out
}

func (e VariantEntry) Contains(v Variant) bool {
	return lo.Contains(e.tags, v)
}

// Merge folds a variant into the entry, reporting whether anything changed.
// A scalar equal to v is left alone; a different scalar is promoted to the
// set [existing, v]; a set gains v only if absent.
func (e VariantEntry) Merge(v Variant) (VariantEntry, bool) {
	if e.Contains(v) {
		return e, false
	}
	tags := make([]Variant, 0, len(e.tags)+1)
	tags = append(tags, e.tags...)
	tags = append(tags, v)
	return VariantEntry{tags: tags, multiple: true}, true
}

func (e VariantEntry) String() string {
	if tag, ok := e.Single(); ok {
		return string(tag)
	}
	return fmt.Sprintf("%v", e.tags)
}

func (e VariantEntry) MarshalJSON() ([]byte, error) {
	if tag, ok := e.Single(); ok {
		return json.Marshal(tag)
	}
	return json.Marshal(e.tags)
}

func (e *VariantEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tags []Variant
		if err := json.Unmarshal(data, &tags); err != nil {
			return err
		}
		e.tags = tags
		e.multiple = true
		return nil
	}

	var tag Variant
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	e.tags = []Variant{tag}
	e.multiple = false
	return nil
}
