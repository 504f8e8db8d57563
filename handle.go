package eventaction

import "sync/atomic"

// handleSeq is the process-wide identifier counter.
var handleSeq atomic.Uint64

// noCopy may be embedded in structs that must not be copied after first use.
// go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle is an identity token. The zero value is empty (identifier 0).
//
// Handles compare by identifier. Identifiers come from a single
// monotonically increasing counter; after 2^64 draws the counter wraps and
// identifiers may repeat. That is accepted.
type Handle struct {
	_  noCopy
	id uint64
}

// NewHandle returns a handle with a freshly drawn, nonzero identifier.
// Safe for concurrent use.
func NewHandle() Handle {
	return Handle{id: nextHandleID()}
}

// EmptyHandle returns a handle with identifier 0.
func EmptyHandle() Handle {
	return Handle{}
}

func nextHandleID() uint64 {
	id := handleSeq.Add(1)
	// 0 marks the empty handle; skip it on wraparound.
	for id == 0 {
		id = handleSeq.Add(1)
	}
	return id
}

// IsValid reports whether the handle holds a nonzero identifier.
func (h *Handle) IsValid() bool {
	return h.id != 0
}

// Reset empties the handle.
func (h *Handle) Reset() {
	h.id = 0
}

// ID returns the raw identifier.
func (h *Handle) ID() uint64 {
	return h.id
}

// Equal reports whether both handles carry the same identifier.
func (h *Handle) Equal(other *Handle) bool {
	return h.id == other.id
}
