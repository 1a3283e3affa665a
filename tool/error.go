package tool

import (
	"errors"
	"strings"
)

// CodeUnknown is the fallback error code when a failure carries none.
const CodeUnknown = "UNKNOWN_ERROR"

// ErrSyncInvocation is returned by the synchronous entry point of every
// adapter. Tools run exclusively through the asynchronous, context-aware
// path; hitting this error means the host wired the wrong entry point.
var ErrSyncInvocation = errors.New("tool: synchronous invocation is not supported, use the asynchronous interface")

// ErrorCoder is implemented by errors that carry a machine-readable code,
// e.g. kit.Error and ValidationError.
type ErrorCoder interface {
	ErrorCode() string
}

// CodeOf returns the structured code carried by err, or CodeUnknown.
func CodeOf(err error) string {
	var coder ErrorCoder
	if errors.As(err, &coder) {
		if code := strings.TrimSpace(coder.ErrorCode()); code != "" {
			return code
		}
	}
	return CodeUnknown
}
