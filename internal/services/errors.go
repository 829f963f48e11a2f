package services

// Typed errors returned by the completion service. Handlers map these to
// HTTP statuses at the boundary.

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type BadRequestError struct{ Message string }

func (e *BadRequestError) Error() string { return e.Message }

// UpstreamError covers everything else: timeouts, connection failures,
// unexpected response shapes, provider 5xx.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }
