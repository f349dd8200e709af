// File: cancel.go — the one piece of process-wide shared state in the
// whole topology pipeline: a write-add-only, membership-checked set of
// cancelled request ids. An id enters on Cancel, leaves when ComputeSync
// delivers a result or error event for it.
package worker

import "sync"

type cancelRegistry struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

var cancelled = &cancelRegistry{ids: make(map[string]struct{})}

// Cancel marks requestID as cancelled. Safe to call before the request
// starts, during it, or after it has already completed; in the latter case
// the id stays registered, so the next ComputeSync with the same id ends
// with a cancellation error at its first check.
func Cancel(requestID string) {
	cancelled.mu.Lock()
	cancelled.ids[requestID] = struct{}{}
	cancelled.mu.Unlock()
}

// isCancelled reports whether requestID has been cancelled.
func isCancelled(requestID string) bool {
	cancelled.mu.Lock()
	_, ok := cancelled.ids[requestID]
	cancelled.mu.Unlock()
	return ok
}

// clearCancelled removes requestID from the registry; called exactly once,
// at the end of ComputeSync (success, fallback, or terminal error), so a
// reused request id does not stay poisoned.
func clearCancelled(requestID string) {
	cancelled.mu.Lock()
	delete(cancelled.ids, requestID)
	cancelled.mu.Unlock()
}
