// Package schema defines the types necessary for unmarshalling
// enumeration declarations from XML or YAML schema files.
package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"deedles.dev/enum"
)

type Schema struct {
	XMLName xml.Name `xml:"schema" yaml:"-"`

	Name  string `xml:"name,attr" yaml:"name"`
	Enums []Enum `xml:"enum" yaml:"enums"`
}

type Enum struct {
	Name    string `xml:"name,attr" yaml:"name"`
	Summary string `xml:"summary,attr" yaml:"summary"`

	// Type names the storage backing the enumeration, e.g. "uint32".
	// Empty means the platform long.
	Type  string `xml:"type,attr" yaml:"type"`
	Start int64  `xml:"start,attr" yaml:"start"`

	Entries []Entry `xml:"entry" yaml:"entries"`
}

type Entry struct {
	Name    string `xml:"name,attr" yaml:"name"`
	Summary string `xml:"summary,attr" yaml:"summary"`

	// Value is the declared value, or empty for one assigned
	// sequentially from the previous entry's.
	Value string `xml:"value,attr" yaml:"value"`
}

// Int parses the entry's declared value. Hexadecimal and octal
// prefixes are accepted.
func (e Entry) Int() (int64, error) {
	return strconv.ParseInt(e.Value, 0, 64)
}

// Def lowers the declaration to an enum.Def.
func (e Enum) Def() (enum.Def, error) {
	storage, err := enum.ParseStorage(e.Type)
	if err != nil {
		return enum.Def{}, fmt.Errorf("enum %q: %w", e.Name, err)
	}

	members := make([]enum.Member, 0, len(e.Entries))
	for _, entry := range e.Entries {
		if entry.Value == "" {
			members = append(members, enum.M(entry.Name))
			continue
		}

		v, err := entry.Int()
		if err != nil {
			return enum.Def{}, fmt.Errorf("enum %q: entry %q: %w", e.Name, entry.Name, err)
		}
		members = append(members, enum.MV(entry.Name, v))
	}

	return enum.Def{
		Name:    e.Name,
		Storage: storage,
		Start:   e.Start,
		Members: members,
	}, nil
}

// DecodeXML reads an XML schema from r.
func DecodeXML(r io.Reader) (s Schema, err error) {
	d := xml.NewDecoder(r)
	err = d.Decode(&s)
	return s, err
}

// DecodeYAML reads a YAML schema from r.
func DecodeYAML(r io.Reader) (s Schema, err error) {
	d := yaml.NewDecoder(r)
	err = d.Decode(&s)
	return s, err
}

// LoadFile reads a schema from path, choosing the format by file
// extension: .yaml and .yml are YAML, everything else is XML.
func LoadFile(path string) (Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		return Schema{}, err
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return DecodeYAML(file)
	default:
		return DecodeXML(file)
	}
}

// Types builds every enumeration declared by the schema, keyed by
// name.
func (s Schema) Types() (map[string]*enum.Type, error) {
	types := make(map[string]*enum.Type, len(s.Enums))
	for _, e := range s.Enums {
		def, err := e.Def()
		if err != nil {
			return nil, err
		}
		types[e.Name] = enum.New(def)
	}
	return types, nil
}
