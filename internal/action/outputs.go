package action

import (
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/sethvargo/go-githubactions"
)

// Output names written by the step.
const (
	OutputJobTitle         = "job-title"
	OutputStatus           = "status"
	OutputSkillLevel       = "skill-level"
	OutputDurationEstimate = "duration-estimate"
	OutputShortDescription = "short-description"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Sink receives step outputs.
type Sink interface {
	SetOutput(name, value string) error
}

// NewSink returns the sink used by a real run.
func NewSink(outputFile string, stdout io.Writer) Sink {
	return NewRunnerSink(outputFile, stdout)
}

// MemorySink keeps outputs in memory and guards access with a RWMutex. A run
// never selects it; it serves callers that embed App in-process and tests
// that assert on outputs.
type MemorySink struct {
	mu      sync.RWMutex
	outputs map[string]string
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{outputs: map[string]string{}}
}

// SetOutput implements Sink. Later writes replace earlier ones.
func (s *MemorySink) SetOutput(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidOutput)
	}
	s.mu.Lock()
	s.outputs[name] = value
	s.mu.Unlock()
	return nil
}

// Get returns a single output.
func (s *MemorySink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.outputs[name]
	return v, ok
}

// Outputs returns a copy of every output written so far.
func (s *MemorySink) Outputs() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.outputs)
}

// RunnerSink writes outputs through githubactions: to the $GITHUB_OUTPUT
// file when one is configured, or as ::set-output commands on the writer
// otherwise.
type RunnerSink struct {
	gha *githubactions.Action
}

// NewRunnerSink creates a RunnerSink appending to outputFile, falling back to
// set-output commands on stdout.
func NewRunnerSink(outputFile string, stdout io.Writer) *RunnerSink {
	getenv := func(key string) string {
		if key == "GITHUB_OUTPUT" {
			return outputFile
		}
		return ""
	}
	return &RunnerSink{gha: githubactions.New(
		githubactions.WithWriter(stdout),
		githubactions.WithGetenv(getenv),
	)}
}

// SetOutput implements Sink.
func (s *RunnerSink) SetOutput(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidOutput)
	}
	s.gha.SetOutput(name, value)
	return nil
}
