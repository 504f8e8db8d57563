package publisher

import "github.com/comalice/eventaction"

// EventObserver runs an Event each time one of its names is notified.
type EventObserver[R any, P eventaction.Params] struct {
	event  *eventaction.Event[R, P]
	result func(eventName string, r eventaction.Option[R])
}

// ObserveEvent adapts e into an Observer. Every notification executes e with
// ExecutePreserving so the bound arguments survive for the next one. onResult
// may be nil. A nil e yields an observer that does nothing.
func ObserveEvent[R any, P eventaction.Params](e *eventaction.Event[R, P], onResult func(eventName string, r eventaction.Option[R])) *EventObserver[R, P] {
	return &EventObserver[R, P]{event: e, result: onResult}
}

func (o *EventObserver[R, P]) Execute(eventName string) {
	if o.event == nil {
		return
	}
	r := o.event.ExecutePreserving()
	if o.result != nil {
		o.result(eventName, r)
	}
}

// Event returns the adapted event.
func (o *EventObserver[R, P]) Event() *eventaction.Event[R, P] {
	return o.event
}
