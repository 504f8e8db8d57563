package eventaction

// Params is implemented by the fixed-arity argument tuples.
type Params interface {
	Arity() int
}

// Tuple0 is the empty argument list.
type Tuple0 struct{}

// Tuple1 holds one argument.
type Tuple1[A any] struct {
	V0 A
}

// Tuple2 holds two arguments.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 holds three arguments.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 holds four arguments.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

func (Tuple0) Arity() int             { return 0 }
func (Tuple1[A]) Arity() int          { return 1 }
func (Tuple2[A, B]) Arity() int       { return 2 }
func (Tuple3[A, B, C]) Arity() int    { return 3 }
func (Tuple4[A, B, C, D]) Arity() int { return 4 }

// T1 builds a tuple of one argument.
func T1[A any](a A) Tuple1[A] {
	return Tuple1[A]{V0: a}
}

// T2 builds a tuple of two arguments.
func T2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V0: a, V1: b}
}

// T3 builds a tuple of three arguments.
func T3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V0: a, V1: b, V2: c}
}

// T4 builds a tuple of four arguments.
func T4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V0: a, V1: b, V2: c, V3: d}
}
