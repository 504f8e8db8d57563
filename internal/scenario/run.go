package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/eventaction/publisher"
)

// RunOptions tune Run.
type RunOptions struct {
	// Strict notifies with NotifyStrict and reports unknown events.
	Strict bool
	// Logger, when set, wraps every observer in a LoggingObserver.
	Logger *log.Logger
}

type printObserver struct {
	message string
	w       io.Writer
}

func (o *printObserver) Execute(eventName string) {
	fmt.Fprintln(o.w, strings.ReplaceAll(o.message, "{event}", eventName))
}

// Run executes s against pub, writing observer and step output to w.
func Run(ctx context.Context, s *Scenario, pub *publisher.Publisher, w io.Writer, opts RunOptions) error {
	if err := s.Validate(); err != nil {
		return err
	}

	observers := make(map[string]publisher.Observer, len(s.Observers))
	for _, spec := range s.Observers {
		var o publisher.Observer = &printObserver{message: spec.Message, w: w}
		if opts.Logger != nil {
			o = publisher.NewLoggingObserver(spec.Name, o, opts.Logger)
		}
		observers[spec.Name] = o
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		switch st.Op {
		case OpSay:
			fmt.Fprintln(w, st.Text)
		case OpSubscribe:
			pub.Subscribe(st.Event, observers[st.Observer])
		case OpUnsubscribe:
			pub.Unsubscribe(st.Event, observers[st.Observer])
		case OpNotify:
			if !opts.Strict {
				pub.NotifyContext(ctx, st.Event)
				continue
			}
			err := pub.NotifyStrict(ctx, st.Event)
			var unknown *publisher.UnknownEventError
			if errors.As(err, &unknown) {
				fmt.Fprintf(w, "strict: %v\n", unknown)
				continue
			}
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case OpDump:
			if err := Dump(pub, w); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
	}
	return nil
}

// Dump writes the publisher's subscription counts as YAML.
func Dump(pub *publisher.Publisher, w io.Writer) error {
	data, err := yaml.Marshal(pub.Snapshot())
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	return nil
}
