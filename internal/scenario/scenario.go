// Package scenario describes and runs scripted publisher sessions for the
// demo program.
package scenario

import (
	"errors"
	"fmt"
)

// Step operations.
const (
	OpSay         = "say"
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
	OpNotify      = "notify"
	OpDump        = "dump"
)

var (
	ErrUnknownOp       = errors.New("unknown step op")
	ErrUnknownObserver = errors.New("observer not defined")
	ErrInvalidStep     = errors.New("invalid step")
)

// ObserverSpec defines a printing observer. Message may contain {event},
// which is replaced with the notified event name.
type ObserverSpec struct {
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

// Step is one scripted operation.
type Step struct {
	Op       string `json:"op" yaml:"op"`
	Event    string `json:"event,omitempty" yaml:"event,omitempty"`
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Scenario is a named list of observers and steps.
type Scenario struct {
	Name      string         `json:"name" yaml:"name"`
	Observers []ObserverSpec `json:"observers" yaml:"observers"`
	Steps     []Step         `json:"steps" yaml:"steps"`
}

// Validate checks op names and observer references.
func (s *Scenario) Validate() error {
	defined := make(map[string]bool, len(s.Observers))
	for i, o := range s.Observers {
		if o.Name == "" {
			return fmt.Errorf("observer %d: empty name: %w", i, ErrInvalidStep)
		}
		if defined[o.Name] {
			return fmt.Errorf("observer %q defined twice: %w", o.Name, ErrInvalidStep)
		}
		defined[o.Name] = true
	}

	for i, st := range s.Steps {
		switch st.Op {
		case OpSay, OpDump:
		case OpNotify:
			if st.Event == "" {
				return fmt.Errorf("step %d (%s): missing event: %w", i, st.Op, ErrInvalidStep)
			}
		case OpSubscribe, OpUnsubscribe:
			if st.Event == "" {
				return fmt.Errorf("step %d (%s): missing event: %w", i, st.Op, ErrInvalidStep)
			}
			if !defined[st.Observer] {
				return fmt.Errorf("step %d (%s): %q: %w", i, st.Op, st.Observer, ErrUnknownObserver)
			}
		default:
			return fmt.Errorf("step %d: %q: %w", i, st.Op, ErrUnknownOp)
		}
	}
	return nil
}

// Default mirrors the classic observer walkthrough: two observers on
// "start", one removed, then an unknown event.
func Default() *Scenario {
	return &Scenario{
		Name: "observer-walkthrough",
		Observers: []ObserverSpec{
			{Name: "A", Message: "ObA received event: {event}"},
			{Name: "B", Message: "ObB received event: {event}"},
		},
		Steps: []Step{
			{Op: OpSay, Text: "Subscribe ObA and ObB to 'start'"},
			{Op: OpSubscribe, Event: "start", Observer: "A"},
			{Op: OpSubscribe, Event: "start", Observer: "B"},
			{Op: OpSay, Text: "Notify 'start' (both should receive)"},
			{Op: OpNotify, Event: "start"},
			{Op: OpSay, Text: "Unsubscribe ObB from 'start'"},
			{Op: OpUnsubscribe, Event: "start", Observer: "B"},
			{Op: OpSay, Text: "Notify 'start' (only ObA should receive)"},
			{Op: OpNotify, Event: "start"},
			{Op: OpSay, Text: "Notify 'unknown' (no observers)"},
			{Op: OpNotify, Event: "unknown"},
		},
	}
}
