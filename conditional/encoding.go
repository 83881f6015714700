package conditional

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is an ordered list of entries.
//
// Its JSON and YAML forms are a single object mapping each flag name to its
// symbol list, written in table order. Requirements are not serialized.
type Table []Entry

func (t Table) clone() Table {
	out := make(Table, len(t))
	for i, e := range t {
		out[i] = e.clone()
	}
	return out
}

// Map returns a fresh flag -> symbols map.
func (t Table) Map() map[string][]string {
	m := make(map[string][]string, len(t))
	for _, e := range t {
		m[e.Name] = cloneStrings(e.Symbols)
	}
	return m
}

// validate checks the invariants shared by the compiled-in table and
// decoded tables: names are unique and non-empty, symbol lists are non-empty.
func (t Table) validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, e := range t {
		if e.Name == "" {
			return fmt.Errorf("conditional: entry %d has no name", i)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("conditional: duplicate flag %q", e.Name)
		}
		seen[e.Name] = struct{}{}
		if len(e.Symbols) == 0 {
			return fmt.Errorf("conditional: flag %q has no symbols", e.Name)
		}
		for _, s := range e.Symbols {
			if s == "" {
				return fmt.Errorf("conditional: flag %q has an empty symbol", e.Name)
			}
		}
	}
	return nil
}

func (t Table) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Symbols)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("conditional: expected JSON object, got %v", tok)
	}
	var out Table
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("conditional: expected flag name, got %v", tok)
		}
		var symbols []string
		if err := dec.Decode(&symbols); err != nil {
			return fmt.Errorf("conditional: flag %q: %w", name, err)
		}
		out = append(out, Entry{Name: name, Symbols: symbols})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if err := out.validate(); err != nil {
		return err
	}
	*t = out
	return nil
}

func (t Table) MarshalYAML() (interface{}, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range t {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, s := range e.Symbols {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			seq,
		)
	}
	return m, nil
}

func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("conditional: line %d: expected a mapping", value.Line)
	}
	out := make(Table, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("conditional: line %d: expected flag name", k.Line)
		}
		var symbols []string
		if err := v.Decode(&symbols); err != nil {
			return fmt.Errorf("conditional: flag %q: %w", k.Value, err)
		}
		out = append(out, Entry{Name: k.Value, Symbols: symbols})
	}
	if err := out.validate(); err != nil {
		return err
	}
	*t = out
	return nil
}
