package tool

// Status discriminates the two result envelope variants.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the normalized outcome envelope every adapter invocation
// produces. It is a plain mapping so the host framework can relay it without
// further conversion: "status" plus "message" always, "code" on errors, and
// adapter-specific result keys on success.
type Result map[string]any

// Success builds a success result carrying message plus the adapter's result
// keys. Reserved envelope keys in data are not overwritten.
func Success(message string, data map[string]any) Result {
	result := Result{
		"status": string(StatusSuccess),
	}
	if message != "" {
		result["message"] = message
	}
	for key, value := range data {
		if key == "status" {
			continue
		}
		result[key] = value
	}
	return result
}

// Failure converts err into an error result with its message and code.
func Failure(err error) Result {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return Result{
		"status":  string(StatusError),
		"message": message,
		"code":    CodeOf(err),
	}
}

// Status returns the envelope discriminator.
func (r Result) Status() Status {
	status, _ := r["status"].(string)
	return Status(status)
}

// OK reports whether the result is a success envelope.
func (r Result) OK() bool {
	return r.Status() == StatusSuccess
}

// Message returns the human-readable outcome description.
func (r Result) Message() string {
	message, _ := r["message"].(string)
	return message
}

// Code returns the structured error code, empty on success results.
func (r Result) Code() string {
	code, _ := r["code"].(string)
	return code
}

// Get returns an adapter-specific result value by key.
func (r Result) Get(key string) any {
	return r[key]
}
