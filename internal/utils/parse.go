package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// TOMLSection is one [table] of a config file decoded without a schema.
type TOMLSection map[string]any

// DecodeTOMLFile decodes configPath strictly into config and warns about
// keys that matched no field.
func DecodeTOMLFile(configPath string, config any) error {
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warnf("Ignoring unknown keys in %s: %s", configPath, strings.Join(keys, ", "))
	}
	return nil
}

// DecodeTOMLSections decodes configPath into its top-level tables, so that
// a file whose values do not fit the config types can still be salvaged
// key by key. Top-level keys outside a table are ignored.
func DecodeTOMLSections(configPath string) (map[string]TOMLSection, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", configPath, err)
	}
	sections := make(map[string]TOMLSection, len(raw))
	for name, v := range raw {
		if table, ok := v.(map[string]any); ok {
			sections[name] = table
		}
	}
	return sections, nil
}

// Int returns key as an int. TOML integers decode as int64.
func (s TOMLSection) Int(key string) (int, bool) {
	v, ok := s[key].(int64)
	return int(v), ok
}

// Bool returns key as a bool.
func (s TOMLSection) Bool(key string) (bool, bool) {
	v, ok := s[key].(bool)
	return v, ok
}

// Str returns key as a string.
func (s TOMLSection) Str(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// StrList returns key as a string list. A list holding anything but
// strings is reported as missing.
func (s TOMLSection) StrList(key string) ([]string, bool) {
	raw, ok := s[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

// Set copies key into dst when it is present with dst's type.
func Set[T int | bool | string | []string](s TOMLSection, key string, dst *T) {
	var (
		v  any
		ok bool
	)
	switch any(*dst).(type) {
	case int:
		v, ok = s.Int(key)
	case bool:
		v, ok = s.Bool(key)
	case string:
		v, ok = s.Str(key)
	case []string:
		v, ok = s.StrList(key)
	}
	if ok {
		*dst = v.(T)
		return
	}
	if _, present := s[key]; present {
		log.Warnf("Ignoring %s: unexpected type %T", key, s[key])
	}
}
