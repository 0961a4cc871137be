package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/regup-org/regup/internal/domain"
)

// NetworkEntry associates one chain identifier with its variant entry.
type NetworkEntry struct {
	ChainID string
	Entry   VariantEntry
}

// NetworkAddresses is a record's networkAddresses mapping, kept as an
// ordered sequence of (chain ID, variant entry) pairs rather than a map so
// that the serialized key order is an explicit, testable property. Keys are
// decimal chain-ID strings and serialize in ascending numeric order.
type NetworkAddresses []NetworkEntry

// ParseChainID validates a chain identifier string as a non-negative
// decimal integer.
func ParseChainID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidChainID, s)
	}
	return id, nil
}

// Get returns the entry for a chain ID, matching on the exact key string.
func (na NetworkAddresses) Get(chainID string) (VariantEntry, bool) {
	for _, entry := range na {
		if entry.ChainID == chainID {
			return entry.Entry, true
		}
	}
	return VariantEntry{}, false
}

// AddChain inserts a chain into the mapping and reports whether the mapping
// changed. An existing key keeps its position and has the variant merged
// into its entry. A new key triggers a full rebuild in ascending numeric
// key order with the new (chainID -> variant) pair at its sorted position,
// regardless of the order the input happened to be stored in.
func (na NetworkAddresses) AddChain(chainID string, variant Variant) (NetworkAddresses, bool, error) {
	if _, err := ParseChainID(chainID); err != nil {
		return nil, false, err
	}

	for i, entry := range na {
		if entry.ChainID != chainID {
			continue
		}
		merged, changed := entry.Entry.Merge(variant)
		if !changed {
			return na, false, nil
		}
		out := make(NetworkAddresses, len(na))
		copy(out, na)
		out[i].Entry = merged
		return out, true, nil
	}

	out := make(NetworkAddresses, 0, len(na)+1)
	out = append(out, na...)
	out = append(out, NetworkEntry{ChainID: chainID, Entry: SingleVariant(variant)})
	sort.SliceStable(out, func(i, j int) bool {
		a, aerr := strconv.ParseUint(out[i].ChainID, 10, 64)
		b, berr := strconv.ParseUint(out[j].ChainID, 10, 64)
		if aerr != nil || berr != nil {
			// non-numeric keys sink to the end; check flags them
			return berr != nil && aerr == nil
		}
		return a < b
	})
	return out, true, nil
}

// MarshalJSON writes the mapping as a JSON object in slice order.
func (na NetworkAddresses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range na {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.ChainID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Entry)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving the key order it was stored
// with, including out-of-order input that AddChain later repairs.
func (na *NetworkAddresses) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("networkAddresses: expected object, got %v", tok)
	}

	entries := NetworkAddresses{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("networkAddresses: unexpected key token %v", keyTok)
		}
		var entry VariantEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("networkAddresses[%s]: %w", key, err)
		}
		entries = append(entries, NetworkEntry{ChainID: key, Entry: entry})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*na = entries
	return nil
}
