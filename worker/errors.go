// File: errors.go — sentinel re-export, matching every other topokit
// package's "own Err* backed by topoerr" convention.
package worker

import "github.com/katalvlaran/topokit/topoerr"

// ErrCancelled is re-exported from topoerr. ComputeSync never returns it
// directly (cancellation is reported as an Event instead); it is exposed
// for callers that want errors.Is against the underlying cause of a
// terminal error Event's wrapped cause, if one is attached.
var ErrCancelled = topoerr.ErrCancelled

// cancelledMessage is the fixed, user-visible message for a cancelled
// request's terminal error event.
const cancelledMessage = "Computation cancelled"
