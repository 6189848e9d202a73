package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sandeepkv93/samtodo/internal/model"
)

// Envelope is the JSON body posted by the page's inline event handlers.
type Envelope struct {
	Action     Type              `json:"action"`
	InputField string            `json:"inputField,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Index      *int              `json:"index,omitempty"`
	Value      *string           `json:"value,omitempty"`
	Items      []model.Task      `json:"items,omitempty"`
}

const envelopeSchemaURL = "envelope.schema.json"

const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["action"],
  "additionalProperties": false,
  "properties": {
    "action": {"enum": ["initAndGo", "addItem", "doneItem", "editItem", "removeDoneItems", "toggleEditMode"]},
    "inputField": {"type": "string", "minLength": 1},
    "fields": {"type": "object", "additionalProperties": {"type": "string"}},
    "index": {"type": "integer", "minimum": 0},
    "value": {"type": "string"},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text"],
        "additionalProperties": false,
        "properties": {
          "text": {"type": "string"},
          "done": {"type": "boolean"}
        }
      }
    }
  },
  "allOf": [
    {"if": {"properties": {"action": {"const": "addItem"}}}, "then": {"required": ["inputField"]}},
    {"if": {"properties": {"action": {"enum": ["doneItem", "editItem"]}}}, "then": {"required": ["index"]}},
    {"if": {"properties": {"action": {"const": "editItem"}}}, "then": {"required": ["value"]}}
  ]
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func envelopeValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(envelopeSchemaURL, strings.NewReader(envelopeSchema)); err != nil {
			schemaErr = fmt.Errorf("add envelope schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(envelopeSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile envelope schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Decode validates raw against the envelope schema and turns it into a Command.
func Decode(raw []byte) (Command, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "envelope is empty"}
	}

	validator, err := envelopeValidator()
	if err != nil {
		return Command{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidEnvelope, Message: fmt.Sprintf("malformed json: %v", err)}
	}
	if err := validator.Validate(doc); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidEnvelope, Message: schemaMessage(err)}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidEnvelope, Message: fmt.Sprintf("decode envelope: %v", err)}
	}
	return env.Command(string(raw)), nil
}

// Command converts an already validated envelope.
func (e Envelope) Command(raw string) Command {
	cmd := Command{Type: e.Action, Raw: raw}
	switch e.Action {
	case TypeInit:
		cmd.Init = &InitArgs{Items: e.Items}
	case TypeAdd:
		cmd.Add = &AddArgs{InputField: e.InputField, Fields: e.Fields}
	case TypeDone:
		cmd.Done = &DoneArgs{Index: deref(e.Index)}
	case TypeEdit:
		text := ""
		if e.Value != nil {
			text = *e.Value
		}
		cmd.Edit = &EditArgs{Index: deref(e.Index), Text: text}
	}
	return cmd
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
