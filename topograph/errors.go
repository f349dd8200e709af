package topograph

import "github.com/katalvlaran/topokit/topoerr"

// ErrBadInput is re-exported from topoerr so callers can branch with
// errors.Is(err, topograph.ErrBadInput) without importing topoerr directly.
var ErrBadInput = topoerr.ErrBadInput
