package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int is a JSON integer that also accepts numeric strings, since web clients
// commonly send select values as strings. Decoding never fails: Present
// reports whether a non-null value was sent and Parsed whether it was an
// integer, so callers decide how to report bad input.
type Int struct {
	Value   int
	Present bool
	Parsed  bool
}

// NewInt returns a parsed Int holding v.
func NewInt(v int) Int {
	return Int{Value: v, Present: true, Parsed: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	i.Present = true

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil
		}
		i.Value, i.Parsed = n, true
		return nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	i.Value, i.Parsed = int(f), true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Parsed {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}
