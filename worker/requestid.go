// File: requestid.go — default request id generation for callers that do
// not track their own request ids; requestId is caller-supplied on the
// wire, so this is a convenience for the CLI and ad-hoc callers.
package worker

import "github.com/google/uuid"

// NewRequestID returns a fresh random request id suitable for ComputeSync
// and Cancel, for callers with no request id of their own to reuse.
func NewRequestID() string {
	return uuid.NewString()
}
