package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RunFunc extracts arguments from validated input and performs exactly one
// call on the agent kit collaborator. The returned map holds the
// adapter-specific result keys merged into the success envelope.
type RunFunc func(ctx context.Context, args Args) (map[string]any, error)

// Spec is the declarative definition of one adapter. All fields are fixed at
// construction; an adapter owns no other state.
type Spec struct {
	// Name is the stable identifier used for registration and dispatch.
	Name string
	// Description documents the expected input and output shapes for the
	// host framework. It is part of the adapter's public contract.
	Description string
	// Schema validates parsed input before Invoke runs. Ignored when
	// NoInput is set.
	Schema Schema
	// NoInput marks adapters that take no payload and skip parsing.
	NoInput bool
	// SuccessMessage is the fixed human-readable message on success
	// envelopes.
	SuccessMessage string
	// Invoke binds the adapter to one agent kit operation.
	Invoke RunFunc
}

// Adapter wraps one remote operation behind the validated-input,
// normalized-output calling convention. Adapters are stateless per
// invocation and safe for concurrent use.
type Adapter struct {
	spec Spec
}

// New builds an adapter from spec. It fails on specs a registry must never
// hold: missing name, missing delegate binding, or a schema naming an
// unknown kind.
func New(spec Spec) (*Adapter, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, errors.New("tool: adapter name is required")
	}
	if spec.Invoke == nil {
		return nil, fmt.Errorf("tool: adapter %s has no delegate binding", spec.Name)
	}
	for _, field := range spec.Schema {
		for _, kind := range field.Spec.Kinds() {
			if _, ok := validKinds[kind]; !ok {
				return nil, &ValidationError{
					Field:   field.Name,
					Code:    CodeInvalidSchema,
					Message: fmt.Sprintf("tool: adapter %s field %s declares unknown kind %q", spec.Name, field.Name, kind),
				}
			}
		}
	}
	return &Adapter{spec: spec}, nil
}

// Name returns the adapter's stable identifier.
func (a *Adapter) Name() string {
	return a.spec.Name
}

// Description returns the adapter's contract documentation.
func (a *Adapter) Description() string {
	return a.spec.Description
}

// Schema returns the adapter's input contract.
func (a *Adapter) Schema() Schema {
	return a.spec.Schema
}

// Call is the asynchronous entry point: parse, validate, delegate, wrap.
// It always returns a result envelope; parse failures, validation failures,
// argument-transformation failures, delegate failures, and panics are all
// converted to error results. Nothing is retried.
func (a *Adapter) Call(ctx context.Context, input string) Result {
	start := time.Now()
	result := a.call(ctx, input)
	emitInvokeObservation(InvokeObservation{
		Tool:       a.spec.Name,
		Success:    result.OK(),
		ErrorCode:  result.Code(),
		DurationMS: time.Since(start).Milliseconds(),
	})
	return result
}

// CallSync is the synchronous entry point and always fails with
// ErrSyncInvocation before reaching the delegate.
func (a *Adapter) CallSync(input string) (Result, error) {
	return nil, ErrSyncInvocation
}

func (a *Adapter) call(ctx context.Context, input string) (result Result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = Failure(fmt.Errorf("tool: %s panicked: %v", a.spec.Name, recovered))
		}
	}()

	var parsed map[string]any
	if !a.spec.NoInput {
		var err error
		parsed, err = ParseInput(input)
		if err != nil {
			return Failure(err)
		}
		if err := Validate(parsed, a.spec.Schema); err != nil {
			return Failure(err)
		}
	}

	data, err := a.spec.Invoke(ctx, NewArgs(parsed))
	if err != nil {
		return Failure(err)
	}
	return Success(a.spec.SuccessMessage, data)
}

// ParseInput decodes a raw JSON object payload. Numbers stay json.Number so
// integer and float conformance remain distinguishable during validation.
func ParseInput(input string) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(input)))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, &ValidationError{
			Field:   "$",
			Code:    CodeInvalidJSON,
			Message: fmt.Sprintf("Failed to parse input as JSON: %v", err),
		}
	}

	parsed, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{
			Field:   "$",
			Code:    CodeInvalidJSON,
			Message: "Input must be a JSON object",
		}
	}
	return parsed, nil
}
