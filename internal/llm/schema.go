package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema the response must satisfy. Declare schemas as
// package-level pointers; the compiled form is cached on first use.
type Schema struct {
	// Name is sent as the tool or schema name, e.g. "spelling-suggestions".
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// Validate checks raw against the schema. Failures are *ErrInvalidResponse.
func (s *Schema) Validate(raw json.RawMessage) error {
	invalid := func(err error) error {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return invalid(errors.New("empty response"))
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}

	compiled, err := s.compile()
	if err != nil {
		return invalid(err)
	}
	if err := compiled.Validate(doc); err != nil {
		return invalid(fmt.Errorf("schema %s: %w", s.Name, err))
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// Round-trip through JSON so Go map and slice types become the
		// generic values the compiler expects.
		data, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = fmt.Errorf("marshal schema %s: %w", s.Name, err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			s.err = fmt.Errorf("parse schema %s: %w", s.Name, err)
			return
		}

		url := "schema://spellz/" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, def); err != nil {
			s.err = fmt.Errorf("add schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
		if s.err != nil {
			s.err = fmt.Errorf("compile schema %s: %w", s.Name, s.err)
		}
	})
	return s.compiled, s.err
}
