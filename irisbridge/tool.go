// Package irisbridge exposes solkit adapters to the iris agent framework.
// Each adapter becomes an iris tools.Tool: the declared input schema is
// rendered as JSON Schema for the model, and Call relays the raw argument
// payload into the adapter's asynchronous entry point.
package irisbridge

import (
	"context"
	"encoding/json"

	"github.com/petal-labs/iris/tools"

	"github.com/solkit-labs/solkit/registry"
	"github.com/solkit-labs/solkit/tool"
)

// Tool wraps one adapter as an iris tool.
type Tool struct {
	adapter *tool.Adapter
	schema  tools.ToolSchema
}

// Wrap builds the iris-facing view of adapter. The JSON Schema is rendered
// once here; adapters never change shape after construction.
func Wrap(adapter *tool.Adapter) *Tool {
	return &Tool{
		adapter: adapter,
		schema:  tools.ToolSchema{JSONSchema: renderJSONSchema(adapter.Schema())},
	}
}

// Bridge wraps every adapter in reg, in registration order.
func Bridge(reg *registry.Registry) []tools.Tool {
	adapters := reg.All()
	bridged := make([]tools.Tool, 0, len(adapters))
	for _, adapter := range adapters {
		bridged = append(bridged, Wrap(adapter))
	}
	return bridged
}

// Name returns the adapter's stable identifier.
func (t *Tool) Name() string {
	return t.adapter.Name()
}

// Description returns the adapter's contract documentation.
func (t *Tool) Description() string {
	return t.adapter.Description()
}

// Schema returns the adapter's input contract as JSON Schema.
func (t *Tool) Schema() tools.ToolSchema {
	return t.schema
}

// Call relays args into the adapter. The returned value is always the
// normalized result envelope; adapter failures are reported inside it, so
// the error return stays nil and the model sees the structured message.
func (t *Tool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	return t.adapter.Call(ctx, string(args)), nil
}

var _ tools.Tool = (*Tool)(nil)

// renderJSONSchema converts the declarative field list into a JSON Schema
// object. Unknown-kind fields cannot occur here; adapter construction
// rejects them.
func renderJSONSchema(schema tool.Schema) json.RawMessage {
	properties := make(map[string]any, len(schema))
	required := make([]string, 0, len(schema))
	for _, field := range schema {
		properties[field.Name] = fieldSchema(field.Spec)
		if field.Spec.Required {
			required = append(required, field.Name)
		}
	}
	document := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		document["required"] = required
	}
	rendered, err := json.Marshal(document)
	if err != nil {
		panic(err)
	}
	return rendered
}

func fieldSchema(spec tool.FieldSpec) map[string]any {
	entry := make(map[string]any)
	kinds := spec.Kinds()
	switch {
	case len(kinds) == 1 && kinds[0] != tool.KindAny:
		entry["type"] = jsonSchemaType(kinds[0])
	case len(kinds) > 1:
		types := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			if kind != tool.KindAny {
				types = append(types, jsonSchemaType(kind))
			}
		}
		entry["type"] = types
	}
	if spec.Min != nil {
		entry["minimum"] = *spec.Min
	}
	if spec.Max != nil {
		entry["maximum"] = *spec.Max
	}
	if spec.Description != "" {
		entry["description"] = spec.Description
	}
	return entry
}

func jsonSchemaType(kind tool.Kind) string {
	switch kind {
	case tool.KindString:
		return "string"
	case tool.KindInteger:
		return "integer"
	case tool.KindFloat:
		return "number"
	case tool.KindBoolean:
		return "boolean"
	case tool.KindArray:
		return "array"
	case tool.KindObject:
		return "object"
	default:
		return "object"
	}
}
