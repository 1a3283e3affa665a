package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type codedError struct {
	code    string
	message string
}

func (e *codedError) Error() string     { return e.message }
func (e *codedError) ErrorCode() string { return e.code }

func testTransferAdapter(t *testing.T, calls *int, delegateErr error) *Adapter {
	t.Helper()

	adapter, err := New(Spec{
		Name:           "solana_transfer",
		Description:    "Transfer tokens or SOL to another address.",
		SuccessMessage: "Transfer completed successfully",
		Schema: Schema{
			{Name: "to", Spec: FieldSpec{Type: KindString, Required: true}},
			{Name: "amount", Spec: FieldSpec{Type: KindInteger, Required: true, Min: Bound(1)}},
			{Name: "mint", Spec: FieldSpec{Type: KindString}},
		},
		Invoke: func(ctx context.Context, args Args) (map[string]any, error) {
			*calls++
			if delegateErr != nil {
				return nil, delegateErr
			}
			return map[string]any{
				"amount":    args.Int("amount"),
				"recipient": args.String("to"),
				"token":     args.StringOr("mint", "SOL"),
			}, nil
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return adapter
}

func TestAdapterCallRoundTrip(t *testing.T) {
	calls := 0
	adapter := testTransferAdapter(t, &calls, nil)

	result := adapter.Call(context.Background(), `{"to": "ABC", "amount": 5}`)
	if !result.OK() {
		t.Fatalf("Call() result = %v, want success", result)
	}
	if calls != 1 {
		t.Fatalf("delegate calls = %d, want 1", calls)
	}
	if got := result.Message(); got != "Transfer completed successfully" {
		t.Errorf("Message() = %q", got)
	}
	if got := result.Get("amount"); got != 5 {
		t.Errorf("amount = %v, want 5", got)
	}
	if got := result.Get("recipient"); got != "ABC" {
		t.Errorf("recipient = %v, want ABC", got)
	}
	if got := result.Get("token"); got != "SOL" {
		t.Errorf("token = %v, want SOL (mint default)", got)
	}
}

func TestAdapterCallValidationFailureSkipsDelegate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantIn   string
	}{
		{
			name:     "missing required field",
			input:    `{"amount": 5}`,
			wantCode: CodeMissingField,
			wantIn:   "Missing required field: to",
		},
		{
			name:     "wrong type",
			input:    `{"to": "ABC", "amount": "five"}`,
			wantCode: CodeInvalidType,
			wantIn:   "Invalid type for field: amount",
		},
		{
			name:     "below minimum",
			input:    `{"to": "ABC", "amount": 0}`,
			wantCode: CodeOutOfRange,
			wantIn:   "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			adapter := testTransferAdapter(t, &calls, nil)

			result := adapter.Call(context.Background(), tt.input)
			if result.OK() {
				t.Fatalf("Call() result = %v, want error", result)
			}
			if calls != 0 {
				t.Fatalf("delegate calls = %d, want 0", calls)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", result.Code(), tt.wantCode)
			}
			if !strings.Contains(result.Message(), tt.wantIn) {
				t.Errorf("Message() = %q, want contains %q", result.Message(), tt.wantIn)
			}
		})
	}
}

func TestAdapterCallMalformedInput(t *testing.T) {
	calls := 0
	adapter := testTransferAdapter(t, &calls, nil)

	result := adapter.Call(context.Background(), `not valid json`)
	if result.OK() {
		t.Fatalf("Call() result = %v, want error", result)
	}
	if calls != 0 {
		t.Fatalf("delegate calls = %d, want 0", calls)
	}
	if result.Code() != CodeInvalidJSON {
		t.Errorf("Code() = %q, want %q", result.Code(), CodeInvalidJSON)
	}
	if !strings.Contains(result.Message(), "parse") {
		t.Errorf("Message() = %q, want parse failure description", result.Message())
	}
}

func TestAdapterCallDelegateErrorSurfacesCode(t *testing.T) {
	calls := 0
	adapter := testTransferAdapter(t, &calls, &codedError{
		code:    "RATE_LIMITED",
		message: "too many requests",
	})

	result := adapter.Call(context.Background(), `{"to": "ABC", "amount": 5}`)
	if result.OK() {
		t.Fatalf("Call() result = %v, want error", result)
	}
	if calls != 1 {
		t.Fatalf("delegate calls = %d, want 1", calls)
	}
	if result.Code() != "RATE_LIMITED" {
		t.Errorf("Code() = %q, want RATE_LIMITED", result.Code())
	}
	if result.Message() != "too many requests" {
		t.Errorf("Message() = %q", result.Message())
	}
}

func TestAdapterCallDelegateErrorWithoutCode(t *testing.T) {
	calls := 0
	adapter := testTransferAdapter(t, &calls, errors.New("connection reset"))

	result := adapter.Call(context.Background(), `{"to": "ABC", "amount": 5}`)
	if result.OK() {
		t.Fatal("Call() succeeded, want error result")
	}
	if result.Code() != CodeUnknown {
		t.Errorf("Code() = %q, want %q", result.Code(), CodeUnknown)
	}
}

func TestAdapterCallRecoversPanic(t *testing.T) {
	adapter, err := New(Spec{
		Name:           "panicky",
		SuccessMessage: "done",
		Invoke: func(ctx context.Context, args Args) (map[string]any, error) {
			panic("delegate exploded")
		},
		NoInput: true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result := adapter.Call(context.Background(), "")
	if result.OK() {
		t.Fatal("Call() succeeded, want error result")
	}
	if !strings.Contains(result.Message(), "delegate exploded") {
		t.Errorf("Message() = %q, want panic text", result.Message())
	}
}

func TestAdapterCallSyncUnsupported(t *testing.T) {
	calls := 0
	adapter := testTransferAdapter(t, &calls, nil)

	result, err := adapter.CallSync(`{"to": "ABC", "amount": 5}`)
	if !errors.Is(err, ErrSyncInvocation) {
		t.Fatalf("CallSync() error = %v, want ErrSyncInvocation", err)
	}
	if result != nil {
		t.Errorf("CallSync() result = %v, want nil", result)
	}
	if calls != 0 {
		t.Errorf("delegate calls = %d, want 0", calls)
	}
}

func TestAdapterNoInputSkipsParsing(t *testing.T) {
	calls := 0
	adapter, err := New(Spec{
		Name:           "solana_request_funds",
		SuccessMessage: "Faucet funds requested successfully",
		NoInput:        true,
		Invoke: func(ctx context.Context, args Args) (map[string]any, error) {
			calls++
			return map[string]any{"result": "sig123"}, nil
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result := adapter.Call(context.Background(), "")
	if !result.OK() {
		t.Fatalf("Call() result = %v, want success", result)
	}
	if calls != 1 {
		t.Fatalf("delegate calls = %d, want 1", calls)
	}
	if got := result.Get("result"); got != "sig123" {
		t.Errorf("result = %v, want sig123", got)
	}
}

func TestNewRejectsInvalidSpecs(t *testing.T) {
	noop := func(ctx context.Context, args Args) (map[string]any, error) { return nil, nil }

	tests := []struct {
		name string
		spec Spec
	}{
		{name: "empty name", spec: Spec{Invoke: noop}},
		{name: "nil delegate", spec: Spec{Name: "x"}},
		{
			name: "unknown kind",
			spec: Spec{
				Name:   "x",
				Invoke: noop,
				Schema: Schema{{Name: "f", Spec: FieldSpec{Type: Kind("decimal")}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.spec); err == nil {
				t.Fatal("New() error = nil, want error")
			}
		})
	}
}

type captureObserver struct {
	observations []InvokeObservation
}

func (c *captureObserver) ObserveInvoke(observation InvokeObservation) {
	c.observations = append(c.observations, observation)
}

func TestAdapterCallEmitsObservation(t *testing.T) {
	capture := &captureObserver{}
	SetObserver(capture)
	t.Cleanup(func() { SetObserver(nil) })

	calls := 0
	adapter := testTransferAdapter(t, &calls, nil)
	adapter.Call(context.Background(), `{"to": "ABC", "amount": 5}`)
	adapter.Call(context.Background(), `{"amount": 5}`)

	if len(capture.observations) != 2 {
		t.Fatalf("observations = %d, want 2", len(capture.observations))
	}
	if !capture.observations[0].Success || capture.observations[0].Tool != "solana_transfer" {
		t.Errorf("first observation = %+v, want success for solana_transfer", capture.observations[0])
	}
	if capture.observations[1].Success || capture.observations[1].ErrorCode != CodeMissingField {
		t.Errorf("second observation = %+v, want %s failure", capture.observations[1], CodeMissingField)
	}
}
