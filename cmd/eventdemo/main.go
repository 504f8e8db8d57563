package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/comalice/eventaction/internal/config"
	"github.com/comalice/eventaction/internal/scenario"
	"github.com/comalice/eventaction/publisher"
)

// logSpanProcessor prints every finished span.
type logSpanProcessor struct {
	logger *log.Logger
}

func (p *logSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.logger.Printf("span %s %v attrs=%v", s.Name(), s.EndTime().Sub(s.StartTime()), s.Attributes())
}

func (p *logSpanProcessor) Shutdown(context.Context) error   { return nil }
func (p *logSpanProcessor) ForceFlush(context.Context) error { return nil }

func main() {
	os.Exit(run())
}

// run executes the demo and returns the process exit code. Deferred cleanup,
// including tracer shutdown, runs before main exits.
func run() int {
	logger := log.New(os.Stderr, "eventdemo: ", log.LstdFlags)

	cfg, err := config.LoadDemo()
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}

	sc := scenario.Default()
	if cfg.Scenario != "" {
		sc, err = scenario.Load(cfg.Scenario)
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
	}

	opts := []publisher.Option{
		publisher.WithLogger(logger),
		publisher.WithSuggestionDistance(cfg.SuggestDistance),
	}
	if cfg.Trace {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&logSpanProcessor{logger: logger}))
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Printf("tracer shutdown: %v", err)
			}
		}()
		otel.SetTracerProvider(tp)
		opts = append(opts, publisher.WithTracerProvider(tp))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runOpts := scenario.RunOptions{Strict: cfg.Strict}
	if cfg.Verbose {
		runOpts.Logger = logger
	}

	logger.Printf("running scenario %q (%d steps)", sc.Name, len(sc.Steps))
	if err := scenario.Run(ctx, sc, publisher.New(opts...), os.Stdout, runOpts); err != nil {
		logger.Printf("scenario %q: %v", sc.Name, err)
		return 1
	}
	return 0
}
