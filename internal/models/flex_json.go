package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// playerFieldMap caches JSON tag -> struct field index mappings
var (
	playerFieldMap     map[string]int
	playerFieldMapOnce sync.Once
)

func getPlayerFieldMap() map[string]int {
	playerFieldMapOnce.Do(func() {
		t := reflect.TypeOf(PlayerRecord{})
		playerFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			playerFieldMap[name] = i
		}
	})
	return playerFieldMap
}

// UnmarshalJSON implements flexible JSON unmarshaling for roster records.
// Snapshot exporters are not consistent about types: stats may arrive as
// quoted strings ("1500" instead of 1500) and individual optional fields may
// be outright malformed. A record only fails to decode when it is not a JSON
// object at all; a bad optional field is dropped, which leaves it absent and
// lets normalization default it to zero.
func (p *PlayerRecord) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias PlayerRecord
	a := (*Alias)(p)

	// Fast path: try standard unmarshal (works when all types match natively)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	// Slow path: field-by-field with string-to-native coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	fieldMap := getPlayerFieldMap()
	v := reflect.ValueOf(a).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		// Try direct unmarshal first
		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		// Value is a JSON string but target is numeric, coerce
		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			if s == "" {
				continue
			}
			coerceStringToField(fv, s)
		}
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
// Returns false when the string cannot represent the target type, in which
// case the field is left untouched (absent).
func coerceStringToField(fv reflect.Value, s string) bool {
	switch fv.Kind() {
	case reflect.Ptr:
		elem := reflect.New(fv.Type().Elem())
		if !coerceStringToField(elem.Elem(), s) {
			return false
		}
		fv.Set(elem)
		return true
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
			return true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "28.5" → truncate to int
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetInt(int64(n))
			return true
		}
	case reflect.String:
		fv.SetString(s)
		return true
	}
	return false
}

// KDRSample is one point of a player's historical kill/death-ratio series.
// The wire form is either a bare number or a labeled {"label","value"}
// object; a quoted numeric string is also accepted. The pipeline passes the
// series through uninterpreted; only the chart consumes it.
type KDRSample struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
}

func (s *KDRSample) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		s.Value = n
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("kdr sample: %q is not numeric", str)
		}
		s.Value = n
		return nil
	}

	// Alias prevents infinite recursion
	type Alias KDRSample
	var a Alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("kdr sample: %w", err)
	}
	*s = KDRSample(a)
	return nil
}
