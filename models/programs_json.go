package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MarshalJSON writes the mapping as nested objects, keeping the stored order
// of categories and programs.
func (p *Programs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range p.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, name := range c.programs {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, name); err != nil {
				return nil, err
			}
			value, err := json.Marshal(c.paths[name])
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}

// UnmarshalJSON reads nested objects in document order. Path values that are
// not strings are kept as their textual form, null becomes empty.
func (p *Programs) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("programs must be an object, got %s", root.Type)
	}

	parsed := NewPrograms()
	var err error
	root.ForEach(func(categoryKey, programs gjson.Result) bool {
		if !programs.IsObject() {
			err = fmt.Errorf("category %q must be an object, got %s", categoryKey.String(), programs.Type)
			return false
		}
		name := categoryKey.String()
		parsed.AddCategory(name)
		programs.ForEach(func(programKey, path gjson.Result) bool {
			parsed.Add(name, programKey.String(), path.String())
			return true
		})
		return true
	})
	if err != nil {
		return err
	}

	*p = *parsed
	return nil
}
