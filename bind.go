package eventaction

// Func0 adapts a no-argument function to a Tuple0 callable.
func Func0[R any](fn func() R) func(Tuple0) R {
	return func(Tuple0) R { return fn() }
}

// Func1 adapts a one-argument function to a Tuple1 callable.
func Func1[R, A any](fn func(A) R) func(Tuple1[A]) R {
	return func(p Tuple1[A]) R { return fn(p.V0) }
}

// Func2 adapts a two-argument function to a Tuple2 callable.
func Func2[R, A, B any](fn func(A, B) R) func(Tuple2[A, B]) R {
	return func(p Tuple2[A, B]) R { return fn(p.V0, p.V1) }
}

// Func3 adapts a three-argument function to a Tuple3 callable.
func Func3[R, A, B, C any](fn func(A, B, C) R) func(Tuple3[A, B, C]) R {
	return func(p Tuple3[A, B, C]) R { return fn(p.V0, p.V1, p.V2) }
}

// Func4 adapts a four-argument function to a Tuple4 callable.
func Func4[R, A, B, C, D any](fn func(A, B, C, D) R) func(Tuple4[A, B, C, D]) R {
	return func(p Tuple4[A, B, C, D]) R { return fn(p.V0, p.V1, p.V2, p.V3) }
}

// Proc0 turns a no-argument function without a result into a Void callable.
func Proc0(fn func()) func() Void {
	return func() Void {
		fn()
		return Void{}
	}
}

// Proc1 turns a one-argument function without a result into a Void callable.
func Proc1[A any](fn func(A)) func(A) Void {
	return func(a A) Void {
		fn(a)
		return Void{}
	}
}

// Proc2 turns a two-argument function without a result into a Void callable.
func Proc2[A, B any](fn func(A, B)) func(A, B) Void {
	return func(a A, b B) Void {
		fn(a, b)
		return Void{}
	}
}

// Proc3 turns a three-argument function without a result into a Void callable.
func Proc3[A, B, C any](fn func(A, B, C)) func(A, B, C) Void {
	return func(a A, b B, c C) Void {
		fn(a, b, c)
		return Void{}
	}
}

// Proc4 turns a four-argument function without a result into a Void callable.
func Proc4[A, B, C, D any](fn func(A, B, C, D)) func(A, B, C, D) Void {
	return func(a A, b B, c C, d D) Void {
		fn(a, b, c, d)
		return Void{}
	}
}

// Bind0 binds a no-argument function to e.
func Bind0[R any](e *Event[R, Tuple0], fn func() R) {
	e.BindEventAction(Func0(fn), Tuple0{})
}

// Bind1 binds fn and its argument to e.
func Bind1[R, A any](e *Event[R, Tuple1[A]], fn func(A) R, a A) {
	e.BindEventAction(Func1(fn), T1(a))
}

// Bind2 binds fn and its two arguments to e.
func Bind2[R, A, B any](e *Event[R, Tuple2[A, B]], fn func(A, B) R, a A, b B) {
	e.BindEventAction(Func2(fn), T2(a, b))
}

// Bind3 binds fn and its three arguments to e.
func Bind3[R, A, B, C any](e *Event[R, Tuple3[A, B, C]], fn func(A, B, C) R, a A, b B, c C) {
	e.BindEventAction(Func3(fn), T3(a, b, c))
}

// Bind4 binds fn and its four arguments to e.
func Bind4[R, A, B, C, D any](e *Event[R, Tuple4[A, B, C, D]], fn func(A, B, C, D) R, a A, b B, c C, d D) {
	e.BindEventAction(Func4(fn), T4(a, b, c, d))
}
