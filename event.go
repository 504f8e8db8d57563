package eventaction

// Event owns one identity Handle and one Action. Use it through the pointer
// returned by NewEvent; copying an Event would duplicate its identity.
//
// Events are not safe for concurrent use.
type Event[R any, P Params] struct {
	_      noCopy
	name   string
	handle Handle
	action Action[R, P]
}

// NewEvent returns an event with a fresh valid handle and no action bound.
func NewEvent[R any, P Params](name string) *Event[R, P] {
	return &Event[R, P]{
		name:   name,
		handle: NewHandle(),
	}
}

// Name returns the display name given at construction.
func (e *Event[R, P]) Name() string {
	return e.name
}

// ID returns the identifier of the event's handle.
func (e *Event[R, P]) ID() uint64 {
	return e.handle.ID()
}

// SameHandle reports whether both events carry the same identifier.
func (e *Event[R, P]) SameHandle(other interface{ ID() uint64 }) bool {
	return e.handle.ID() == other.ID()
}

// IsValid reports whether the event still holds a valid handle.
func (e *Event[R, P]) IsValid() bool {
	return e.handle.IsValid()
}

// IsBound reports whether a callable is bound.
func (e *Event[R, P]) IsBound() bool {
	return e.action.IsValid()
}

// BindEventAction replaces the arguments and the callable together. It has
// no effect once the handle has been released.
func (e *Event[R, P]) BindEventAction(fn func(P) R, params P) {
	if !e.handle.IsValid() {
		return
	}
	next := NewAction[R](params)
	next.Bind(fn)
	e.action = next
}

// ExecuteConsuming runs the bound action, handing over its arguments.
func (e *Event[R, P]) ExecuteConsuming() Option[R] {
	return e.action.ExecuteConsuming()
}

// ExecutePreserving runs the bound action on a copy of its arguments.
func (e *Event[R, P]) ExecutePreserving() Option[R] {
	return e.action.ExecutePreserving()
}

// GetEventAction returns a copy of the current action.
func (e *Event[R, P]) GetEventAction() Action[R, P] {
	return e.action.Clone()
}

// Release empties the handle. Later binds are ignored; an action that is
// already bound can still execute.
func (e *Event[R, P]) Release() {
	e.handle.Reset()
}
