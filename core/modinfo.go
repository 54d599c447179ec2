package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ModInfo is the metadata mapping embedded in a mod archive's modinfo.json.
// Keys are lowercased at parse time so lookups are case-insensitive; the
// original file order of the keys is preserved for display.
type ModInfo struct {
	keys   []string
	values map[string]interface{}
}

// ParseModInfo parses the raw bytes of a modinfo.json file. The top level
// must be a JSON object; anything else is a parse failure.
func ParseModInfo(raw []byte) (ModInfo, error) {
	raw = bytes.TrimSpace(bytes.TrimPrefix(raw, utf8BOM))

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return ModInfo{}, fmt.Errorf("invalid modinfo: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ModInfo{}, fmt.Errorf("invalid modinfo: top level must be an object, got %v", tok)
	}

	info := ModInfo{values: make(map[string]interface{})}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return ModInfo{}, fmt.Errorf("invalid modinfo: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return ModInfo{}, fmt.Errorf("invalid modinfo: non-string key %v", keyTok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return ModInfo{}, fmt.Errorf("invalid modinfo: %w", err)
		}
		info.set(strings.ToLower(key), value)
	}

	if _, err := dec.Token(); err != nil {
		return ModInfo{}, fmt.Errorf("invalid modinfo: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return ModInfo{}, fmt.Errorf("invalid modinfo: trailing data after object")
	}
	return info, nil
}

// set keeps the first-seen position of a key; a duplicate (after
// lowercasing) overwrites the value only.
func (i *ModInfo) set(key string, value interface{}) {
	if _, exists := i.values[key]; !exists {
		i.keys = append(i.keys, key)
	}
	i.values[key] = value
}

// Field resolves a metadata field by name, case-insensitively, rendering the
// value as a string. Missing fields yield ""; this never fails.
func (i ModInfo) Field(name string) string {
	value, ok := i.values[strings.ToLower(name)]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Value returns the raw metadata value for a key, case-insensitively.
func (i ModInfo) Value(name string) (interface{}, bool) {
	value, ok := i.values[strings.ToLower(name)]
	return value, ok
}

// Keys returns the metadata keys in stored (file) order.
func (i ModInfo) Keys() []string {
	return i.keys
}

func (i ModInfo) Len() int {
	return len(i.keys)
}

// Details is the typed view of the well-known modinfo fields. None of them
// are mandatory in the wild, so all fields may be zero.
type Details struct {
	Name         string            `mapstructure:"name"`
	ModID        string            `mapstructure:"modid"`
	Version      string            `mapstructure:"version"`
	Description  string            `mapstructure:"description"`
	Website      string            `mapstructure:"website"`
	Side         string            `mapstructure:"side"`
	Authors      []string          `mapstructure:"authors"`
	Dependencies map[string]string `mapstructure:"dependencies"`
}

// Details decodes the mapping into its typed view. Unknown keys are ignored
// and mistyped well-known keys are coerced where possible.
func (i ModInfo) Details() (Details, error) {
	var details Details
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &details,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return details, err
	}
	if err := decoder.Decode(i.values); err != nil {
		return details, fmt.Errorf("decoding modinfo fields: %w", err)
	}
	return details, nil
}
