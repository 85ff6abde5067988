package freq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/colorbars/pkg/errors"
)

// Entry is a single colour key and its frequency.
type Entry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Table is an insertion-ordered mapping from colour key to frequency.
// The zero value is an empty table ready to use. A Table is not safe for
// concurrent mutation.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New returns a table holding entries in the given order.
// A repeated key replaces the earlier value and keeps the earlier position.
func New(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
	return t
}

// FromMap builds a table from a Go map. Map iteration order is random, so
// entries are inserted in ascending key order to keep the result stable.
func FromMap(m map[string]float64) *Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := &Table{}
	for _, k := range keys {
		t.Set(k, m[k])
	}
	return t
}

// Set stores value under key. Existing keys keep their position.
func (t *Table) Set(key string, value float64) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = value
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Add increments the value stored under key by delta, inserting the key
// at the end if it is new.
func (t *Table) Add(key string, delta float64) {
	if t.index != nil {
		if i, ok := t.index[key]; ok {
			t.entries[i].Value += delta
			return
		}
	}
	t.Set(key, delta)
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (float64, bool) {
	if t == nil || t.index == nil {
		return 0, false
	}
	i, ok := t.index[key]
	if !ok {
		return 0, false
	}
	return t.entries[i].Value, true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// At returns the entry at position i in iteration order.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the entries in iteration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries)
}

// Keys returns the keys in iteration order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in iteration order.
func (t *Table) Values() []float64 {
	values := make([]float64, 0, t.Len())
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// All iterates over key/value pairs in insertion order.
func (t *Table) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Max returns the largest value. ok is false for an empty table.
func (t *Table) Max() (float64, bool) {
	var m float64
	ok := false
	for _, v := range t.All() {
		if !ok || v > m {
			m, ok = v, true
		}
	}
	return m, ok
}

// Sum returns the total of all values.
func (t *Table) Sum() float64 {
	var sum float64
	for _, v := range t.All() {
		sum += v
	}
	return sum
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	return New(t.Entries()...)
}

// MarshalJSON encodes the table as a JSON object with keys in table order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(formatValue(e.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the table, keeping document order.
// Values must be non-negative numbers. A JSON null decodes to an empty table.
func (t *Table) UnmarshalJSON(data []byte) error {
	*t = Table{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode frequency table")
	}
	if tok == nil {
		return expectEOF(dec)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New(errors.ErrCodeInvalidInput, "frequency table must be a JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode frequency table")
		}
		key, _ := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode value for %q", key)
		}
		num, ok := tok.(json.Number)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "value for %q is not a number", key)
		}
		v, err := num.Float64()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "value for %q", key)
		}
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "value for %q is negative (%s)", key, num)
		}
		t.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode frequency table")
	}
	return expectEOF(dec)
}

// expectEOF rejects anything after the top-level value.
func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "trailing data after frequency table")
	}
	return errors.New(errors.ErrCodeInvalidInput, "trailing data after frequency table: %v", tok)
}

// Read decodes a table from r. Read does not close r.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read frequency table: %w", err)
	}
	t := &Table{}
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return t, nil
}

// Write encodes t to w as an indented JSON object, one entry per line.
func Write(w io.Writer, t *Table) error {
	data, err := t.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
