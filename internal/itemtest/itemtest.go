// Package itemtest builds items from JSON and YAML fixtures.
//
// Decoded documents are normalized into the shapes itemfn works with:
// objects become *itemfn.Item, arrays whose elements are all objects
// (including empty arrays) become []*itemfn.Item sub-streams. JSON integers
// become int and other JSON numbers float64; YAML scalars keep the types
// yaml.v3 gives them.
package itemtest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/KasperOmsK/itemfn"
)

// FromJSON decodes a single JSON object into an item.
func FromJSON(data []byte) (*itemfn.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("itemtest: decode json: %w", err)
	}
	return rootItem(root)
}

// FromYAML decodes a single YAML mapping into an item.
func FromYAML(data []byte) (*itemfn.Item, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("itemtest: decode yaml: %w", err)
	}
	return rootItem(root)
}

// LoadYAMLFile reads a YAML mapping of fixture names to items.
// Multiple documents in one file are merged; a later name wins.
func LoadYAMLFile(path string) (map[string]*itemfn.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*itemfn.Item)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("itemtest: %s: %w", path, err)
		}
		for name, v := range doc {
			it, err := rootItem(v)
			if err != nil {
				return nil, fmt.Errorf("itemtest: %s: fixture %q: %w", path, name, err)
			}
			out[name] = it
		}
	}
	return out, nil
}

// Must panics if err is non-nil.
func Must(it *itemfn.Item, err error) *itemfn.Item {
	if err != nil {
		panic(err)
	}
	return it
}

func rootItem(v any) (*itemfn.Item, error) {
	it, ok := normalize(v).(*itemfn.Item)
	if !ok {
		return nil, fmt.Errorf("itemtest: document root is %T, not an object", v)
	}
	return it, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		it := itemfn.New()
		for k, vv := range t {
			it.Set(k, normalize(vv))
		}
		return it
	case map[any]any:
		it := itemfn.New()
		for k, vv := range t {
			it.Set(fmt.Sprint(k), normalize(vv))
		}
		return it
	case []any:
		vals := make([]any, len(t))
		items := make([]*itemfn.Item, 0, len(t))
		for i, e := range t {
			vals[i] = normalize(e)
			if sub, ok := vals[i].(*itemfn.Item); ok {
				items = append(items, sub)
			}
		}
		if len(items) == len(vals) {
			return items
		}
		return vals
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
