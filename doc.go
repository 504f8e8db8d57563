// Package eventaction provides typed, deferred event actions.
//
// An Event owns a unique Handle and a parameter-bound Action: a callable of a
// fixed signature paired with arguments captured when the action is bound.
// Executing the event applies the callable to the captured arguments and
// returns the result as an Option.
//
// # Binding
//
// Argument lists are tuple types (Tuple0 through Tuple4). The callable takes
// the tuple, or a positional function can be adapted with Func2, Bind2 and
// friends:
//
//	sum := eventaction.NewEvent[int, eventaction.Tuple2[int, int]]("sum")
//	eventaction.Bind2(sum, func(a, b int) int { return a + b }, 2, 3)
//	v, ok := sum.ExecutePreserving().Get() // 5, true
//
// Callables with no result use Void as the return type.
//
// # Consuming vs Preserving
//
// ExecutePreserving hands the callable a copy of the captured arguments and
// leaves them in place, so it can be called any number of times.
// ExecuteConsuming hands the arguments over and resets the stored tuple to
// its zero value. After a consuming call the stored arguments are
// unspecified; do not rely on them.
//
// # Concurrency
//
// Events and Actions are not synchronized. The only concurrency-safe
// operation is NewHandle, which may be called from any goroutine.
//
// Observers and name-keyed notification live in the publisher subpackage.
package eventaction
