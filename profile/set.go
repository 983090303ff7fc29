package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Set maps record identifiers to their records.
type Set map[string]Record

// NewSet indexes records by ID. IDs have to be unique and non-empty.
func NewSet(records []Record) (Set, error) {
	set := make(Set, len(records))
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %q has no identifier", r.Name)
		}
		if _, ok := set[r.ID]; ok {
			return nil, fmt.Errorf("duplicate record identifier %q", r.ID)
		}
		set[r.ID] = r
	}
	return set, nil
}

// Records returns the records ordered by start frequency, then name.
func (s Set) Records() []Record {
	records := make([]Record, 0, len(s))
	for _, r := range s {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartFreq != records[j].StartFreq {
			return records[i].StartFreq < records[j].StartFreq
		}
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})
	return records
}

// MarshalJSON encodes the set as an object keyed by ID, in frequency order.
func (s Set) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range s.Records() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("unable to encode record %q: %w", r.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by ID and restores Record.ID.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	set := make(Set, len(raw))
	for id, r := range raw {
		r.ID = id
		set[id] = r
	}
	*s = set
	return nil
}
