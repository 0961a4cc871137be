package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const networkAddressesField = "networkAddresses"

// Record is one deployment record document. Only the networkAddresses field
// is ever interpreted; every other field round-trips untouched, in the order
// it was stored with.
type Record struct {
	// Name is the record's file stem, e.g. "safe_proxy_factory". Set by the
	// store on load, not part of the document.
	Name string

	fields []recordField
}

type recordField struct {
	key string
	raw json.RawMessage
}

// NetworkAddresses decodes the record's networkAddresses mapping. A record
// without the field yields an empty mapping.
func (r *Record) NetworkAddresses() (NetworkAddresses, error) {
	for _, f := range r.fields {
		if f.key != networkAddressesField {
			continue
		}
		var na NetworkAddresses
		if err := json.Unmarshal(f.raw, &na); err != nil {
			return nil, err
		}
		return na, nil
	}
	return NetworkAddresses{}, nil
}

// SetNetworkAddresses replaces the record's networkAddresses field in place,
// appending the field if the document does not carry one yet.
func (r *Record) SetNetworkAddresses(na NetworkAddresses) error {
	raw, err := json.Marshal(na)
	if err != nil {
		return err
	}
	for i, f := range r.fields {
		if f.key == networkAddressesField {
			r.fields[i].raw = raw
			return nil
		}
	}
	r.fields = append(r.fields, recordField{key: networkAddressesField, raw: raw})
	return nil
}

// MarshalJSON writes the document with its fields in original order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		compact := &bytes.Buffer{}
		if err := json.Compact(compact, f.raw); err != nil {
			return nil, err
		}
		buf.Write(compact.Bytes())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the document as an ordered field sequence.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	var fields []recordField
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, recordField{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	r.fields = fields
	return nil
}
