package eventaction

// Action pairs a callable with the argument tuple it will be applied to.
//
// The tuple type P fixes the arity and argument types at compile time.
// Copying an Action copies the tuple by value and shares the callable.
type Action[R any, P Params] struct {
	params P
	fn     func(P) R
}

// NewAction captures params. The action starts unbound.
func NewAction[R any, P Params](params P) Action[R, P] {
	return Action[R, P]{params: params}
}

// ParamCount returns the arity of the argument tuple.
func (a *Action[R, P]) ParamCount() int {
	return a.params.Arity()
}

// Params returns a mutable reference to the stored arguments. Fields that do
// not exist on the tuple type do not compile.
func (a *Action[R, P]) Params() *P {
	return &a.params
}

// ParamsValue returns a copy of the stored arguments.
func (a *Action[R, P]) ParamsValue() P {
	return a.params
}

// Bind replaces the callable. The stored arguments are left alone. Binding
// nil unbinds the action.
func (a *Action[R, P]) Bind(fn func(P) R) {
	a.fn = fn
}

// IsValid reports whether a callable is bound.
func (a *Action[R, P]) IsValid() bool {
	return a.fn != nil
}

// ExecuteConsuming applies the callable to the stored arguments and hands
// them over: the stored tuple is reset to its zero value before the call, so
// a later execution sees zero arguments. Returns None when unbound.
func (a *Action[R, P]) ExecuteConsuming() Option[R] {
	if !a.IsValid() {
		return None[R]()
	}
	params := a.params
	var zero P
	a.params = zero
	return Some(a.fn(params))
}

// ExecutePreserving applies the callable to a copy of the stored arguments
// and leaves them in place. Returns None when unbound.
func (a *Action[R, P]) ExecutePreserving() Option[R] {
	if !a.IsValid() {
		return None[R]()
	}
	return Some(a.fn(a.params))
}

// Clone returns a copy of the action sharing the same callable.
func (a *Action[R, P]) Clone() Action[R, P] {
	return Action[R, P]{params: a.params, fn: a.fn}
}
