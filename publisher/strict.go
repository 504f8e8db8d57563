package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownEvent is returned by NotifyStrict when nothing is subscribed
// under the requested name.
var ErrUnknownEvent = errors.New("unknown event")

// UnknownEventError names the missing event and, when one is close enough,
// the registered name it was probably meant to be.
type UnknownEventError struct {
	Name       string
	Suggestion string
}

func (e *UnknownEventError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("event %q: %v (did you mean %q?)", e.Name, ErrUnknownEvent, e.Suggestion)
	}
	return fmt.Sprintf("event %q: %v", e.Name, ErrUnknownEvent)
}

func (e *UnknownEventError) Unwrap() error {
	return ErrUnknownEvent
}

// NotifyStrict behaves like NotifyContext but returns an *UnknownEventError
// when no live observer is subscribed under eventName.
func (p *Publisher) NotifyStrict(ctx context.Context, eventName string) error {
	if n := p.NotifyContext(ctx, eventName); n > 0 {
		return nil
	}
	err := &UnknownEventError{Name: eventName, Suggestion: p.Suggest(eventName)}
	p.cfg.logger.Printf("notify: %v", err)
	return err
}

// Suggest returns the registered name closest to eventName by edit distance,
// or "" when none is within the configured distance. Ties go to the name
// that sorts first.
func (p *Publisher) Suggest(eventName string) string {
	if p.cfg.maxDistance == 0 {
		return ""
	}
	best, bestDist := "", p.cfg.maxDistance+1
	for _, name := range p.Events() {
		if name == eventName {
			continue
		}
		if d := levenshtein.ComputeDistance(eventName, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
