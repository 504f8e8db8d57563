package eventaction_test

import (
	"strings"
	"testing"

	"github.com/comalice/eventaction"
)

func TestEventSum(t *testing.T) {
	e := eventaction.NewEvent[int, eventaction.Tuple2[int, int]]("sum")
	eventaction.Bind2(e, func(a, b int) int { return a + b }, 2, 3)

	v, ok := e.ExecutePreserving().Get()
	if !ok || v != 5 {
		t.Fatalf("got (%d, %v) want (5, true)", v, ok)
	}
	v, ok = e.ExecuteConsuming().Get()
	if !ok || v != 5 {
		t.Errorf("got (%d, %v) want (5, true)", v, ok)
	}
}

func TestNewEventState(t *testing.T) {
	e := eventaction.NewEvent[eventaction.Void, eventaction.Tuple0]("tick")
	if e.Name() != "tick" {
		t.Errorf("got name %q", e.Name())
	}
	if !e.IsValid() || e.ID() == 0 {
		t.Fatalf("new event has invalid handle (id=%d)", e.ID())
	}
	if e.IsBound() {
		t.Error("new event should start unbound")
	}
	if got := e.ExecuteConsuming(); got.IsPresent() {
		t.Errorf("unbound event returned %v", got)
	}
	if got := e.ExecutePreserving(); got.IsPresent() {
		t.Errorf("unbound event returned %v", got)
	}
}

func TestEventsHaveDistinctHandles(t *testing.T) {
	a := eventaction.NewEvent[int, eventaction.Tuple0]("a")
	b := eventaction.NewEvent[int, eventaction.Tuple0]("b")
	if a.SameHandle(b) {
		t.Errorf("events share id %d", a.ID())
	}
	if !a.SameHandle(a) {
		t.Error("event does not match itself")
	}
}

func TestRebindReplacesParamsAndCallable(t *testing.T) {
	e := eventaction.NewEvent[string, eventaction.Tuple1[string]]("greet")
	e.BindEventAction(func(p eventaction.Tuple1[string]) string {
		return "hello " + p.V0
	}, eventaction.T1("ann"))
	e.BindEventAction(func(p eventaction.Tuple1[string]) string {
		return strings.ToUpper(p.V0)
	}, eventaction.T1("bob"))

	if got := e.ExecutePreserving().MustGet(); got != "BOB" {
		t.Errorf("got %q want BOB", got)
	}
}

func TestGetEventActionIsCopy(t *testing.T) {
	e := eventaction.NewEvent[int, eventaction.Tuple1[int]]("double")
	eventaction.Bind1(e, func(x int) int { return x * 2 }, 21)

	a := e.GetEventAction()
	if !a.IsValid() {
		t.Fatal("copied action is unbound")
	}
	a.Params().V0 = 1
	if got := a.ExecutePreserving().MustGet(); got != 2 {
		t.Errorf("copy got %d want 2", got)
	}
	if got := e.ExecutePreserving().MustGet(); got != 42 {
		t.Errorf("event got %d want 42", got)
	}
}

func TestConsumingEventVoid(t *testing.T) {
	var got []string
	e := eventaction.NewEvent[eventaction.Void, eventaction.Tuple2[string, []string]]("record")
	eventaction.Bind2(e, eventaction.Proc2(func(s string, tags []string) {
		got = append(got, s+":"+strings.Join(tags, ","))
	}), "boot", []string{"a", "b"})

	if !e.ExecuteConsuming().IsPresent() {
		t.Fatal("void execute should be present")
	}
	e.ExecuteConsuming()
	if len(got) != 2 {
		t.Fatalf("got %d calls want 2", len(got))
	}
	if got[0] != "boot:a,b" {
		t.Errorf("first call got %q", got[0])
	}
	if got[1] != ":" {
		t.Errorf("second call got %q want zero params", got[1])
	}
}

func TestReleaseIgnoresLaterBinds(t *testing.T) {
	e := eventaction.NewEvent[int, eventaction.Tuple0]("once")
	eventaction.Bind0(e, func() int { return 1 })
	e.Release()
	if e.IsValid() {
		t.Fatal("released event still valid")
	}
	eventaction.Bind0(e, func() int { return 2 })
	if got := e.ExecutePreserving().MustGet(); got != 1 {
		t.Errorf("got %d want 1", got)
	}
}

func TestBindThreeAndFour(t *testing.T) {
	e3 := eventaction.NewEvent[string, eventaction.Tuple3[string, int, bool]]("fmt")
	eventaction.Bind3(e3, func(s string, n int, b bool) string {
		if b {
			return strings.Repeat(s, n)
		}
		return s
	}, "ab", 3, true)
	if got := e3.ExecutePreserving().MustGet(); got != "ababab" {
		t.Errorf("got %q", got)
	}

	e4 := eventaction.NewEvent[int, eventaction.Tuple4[int, int, int, int]]("sum4")
	eventaction.Bind4(e4, func(a, b, c, d int) int { return a + b + c + d }, 1, 2, 3, 4)
	if got := e4.ExecuteConsuming().MustGet(); got != 10 {
		t.Errorf("got %d want 10", got)
	}
	if got := e4.ExecuteConsuming().MustGet(); got != 0 {
		t.Errorf("consumed params: got %d want 0", got)
	}
}

func TestProcAdaptersBindVoidEvents(t *testing.T) {
	var got []string

	e0 := eventaction.NewEvent[eventaction.Void, eventaction.Tuple0]("ping")
	eventaction.Bind0(e0, eventaction.Proc0(func() { got = append(got, "ping") }))

	e3 := eventaction.NewEvent[eventaction.Void, eventaction.Tuple3[string, int, bool]]("three")
	eventaction.Bind3(e3, eventaction.Proc3(func(s string, n int, b bool) {
		if b {
			got = append(got, strings.Repeat(s, n))
		}
	}), "x", 2, true)

	e4 := eventaction.NewEvent[eventaction.Void, eventaction.Tuple4[string, string, string, string]]("four")
	eventaction.Bind4(e4, eventaction.Proc4(func(a, b, c, d string) {
		got = append(got, a+b+c+d)
	}), "a", "b", "c", "d")

	if !e0.ExecutePreserving().IsPresent() {
		t.Fatal("void execute should be present")
	}
	e3.ExecutePreserving()
	e4.ExecuteConsuming()

	want := []string{"ping", "xx", "abcd"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %q want %q", got, want)
	}
}
