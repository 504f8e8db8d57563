// Package publisher maps event names to observers and notifies them
// synchronously, in registration order.
//
// A Publisher is an ordinary value: construct one with New and pass it to
// whoever needs it. There is no process-wide registry.
//
//	pub := publisher.New()
//	pub.Subscribe("start", a)
//	pub.Subscribe("start", b)
//	pub.Notify("start") // a, then b
//
// Unknown names and nil observers are ignored by Notify. NotifyStrict reports
// unknown names as errors.
package publisher

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives notifications for the names it is subscribed to.
// Execute must not change the observer's own state as part of the contract.
type Observer interface {
	Execute(eventName string)
}

// ObserverFunc adapts a function to Observer. Function values cannot be
// compared, so Unsubscribe never matches an ObserverFunc passed by value;
// subscribe a *ObserverFunc when it has to be removed later.
type ObserverFunc func(eventName string)

func (f ObserverFunc) Execute(eventName string) {
	f(eventName)
}

// Publisher is a name-keyed observer table. It is safe for concurrent use.
type Publisher struct {
	mu        sync.RWMutex
	observers map[string][]Observer

	cfg config
}

// New creates an empty Publisher.
func New(opts ...Option) *Publisher {
	p := &Publisher{
		observers: map[string][]Observer{},
		cfg:       defaultConfig(),
	}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

// Subscribe appends o to the observers of eventName. Duplicates are kept and
// each copy is notified.
func (p *Publisher) Subscribe(eventName string, o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers[eventName] = append(p.observers[eventName], o)
}

// Unsubscribe removes every entry under eventName equal to o. Absent names
// and observers are a no-op.
func (p *Publisher) Unsubscribe(eventName string, o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	list, ok := p.observers[eventName]
	if !ok {
		return
	}
	kept := list[:0]
	for _, cur := range list {
		if !sameObserver(cur, o) {
			kept = append(kept, cur)
		}
	}
	// Clear the tail so removed observers can be collected.
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	if len(kept) == 0 {
		delete(p.observers, eventName)
		return
	}
	p.observers[eventName] = kept
}

// Notify calls Execute(eventName) on each observer of eventName in
// subscription order.
func (p *Publisher) Notify(eventName string) {
	p.NotifyContext(context.Background(), eventName)
}

// NotifyContext is Notify inside a trace span. It returns the number of
// observers invoked.
func (p *Publisher) NotifyContext(ctx context.Context, eventName string) int {
	_, span := p.cfg.tracer.Start(ctx, "publisher.notify",
		trace.WithAttributes(attribute.String("event.name", eventName)))
	defer span.End()

	n := p.dispatch(eventName, p.snapshot(eventName))
	span.SetAttributes(attribute.Int("observer.count", n))
	return n
}

// snapshot copies the observer list so observers may change subscriptions
// while being notified.
func (p *Publisher) snapshot(eventName string) []Observer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	list := p.observers[eventName]
	if len(list) == 0 {
		return nil
	}
	return append([]Observer(nil), list...)
}

func (p *Publisher) dispatch(eventName string, list []Observer) int {
	n := 0
	for _, o := range list {
		if isNilObserver(o) {
			continue
		}
		o.Execute(eventName)
		n++
	}
	return n
}

// Events returns the names that have at least one subscription, sorted.
func (p *Publisher) Events() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.observers))
	for name := range p.observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of entries subscribed under eventName, nil
// entries included.
func (p *Publisher) Count(eventName string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.observers[eventName])
}

// Snapshot returns the entry count per event name.
func (p *Publisher) Snapshot() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]int, len(p.observers))
	for name, list := range p.observers {
		out[name] = len(list)
	}
	return out
}

func isNilObserver(o Observer) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameObserver compares observers by value. Observers whose dynamic value is
// not comparable never match, including structs holding a func, map or slice
// behind an interface field.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
