package scenario

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/eventaction/publisher"
)

const sampleYAML = `
name: sample
observers:
  - name: A
    message: "A got {event}"
  - name: B
    message: "B got {event}"
steps:
  - op: subscribe
    event: start
    observer: A
  - op: subscribe
    event: start
    observer: B
  - op: notify
    event: start
  - op: unsubscribe
    event: start
    observer: B
  - op: dump
  - op: notify
    event: start
`

func TestDefaultScenarioOutput(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Default(), publisher.New(), &out, RunOptions{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Subscribe ObA and ObB to 'start'",
		"Notify 'start' (both should receive)",
		"ObA received event: start",
		"ObB received event: start",
		"Unsubscribe ObB from 'start'",
		"Notify 'start' (only ObA should receive)",
		"ObA received event: start",
		"Notify 'unknown' (no observers)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestParseYAMLAndRun(t *testing.T) {
	s, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Steps, 6)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), s, publisher.New(), &out, RunOptions{}))
	assert.Equal(t, "A got start\nB got start\nstart: 1\nA got start\n", out.String())
}

func TestLoadJSONRoundTrip(t *testing.T) {
	data, err := Marshal(Default(), FormatJSON)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "walkthrough.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Observers, 2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("scenario.txt")
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse([]byte("steps: [oops"), FormatYAML)
	assert.ErrorContains(t, err, "yaml unmarshal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
		want error
	}{
		{
			name: "unknown op",
			s:    Scenario{Steps: []Step{{Op: "explode"}}},
			want: ErrUnknownOp,
		},
		{
			name: "undefined observer",
			s:    Scenario{Steps: []Step{{Op: OpSubscribe, Event: "start", Observer: "ghost"}}},
			want: ErrUnknownObserver,
		},
		{
			name: "notify without event",
			s:    Scenario{Steps: []Step{{Op: OpNotify}}},
			want: ErrInvalidStep,
		},
		{
			name: "duplicate observer",
			s:    Scenario{Observers: []ObserverSpec{{Name: "A"}, {Name: "A"}}},
			want: ErrInvalidStep,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.s.Validate(), tt.want)
		})
	}
}

func TestStrictRunReportsUnknown(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Default(), publisher.New(), &out, RunOptions{Strict: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `strict: event "unknown": unknown event`)
}

func TestVerboseRunLogsObservers(t *testing.T) {
	var out, logs bytes.Buffer
	opts := RunOptions{Logger: log.New(&logs, "", 0)}
	require.NoError(t, Run(context.Background(), Default(), publisher.New(), &out, opts))

	// Unsubscribe must match the wrapped observer, so B is notified once.
	assert.Equal(t, 1, strings.Count(out.String(), "ObB received"))
	assert.Contains(t, logs.String(), `observer A: executing for event "start"`)
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Default(), publisher.New(), &bytes.Buffer{}, RunOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
