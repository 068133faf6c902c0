package character

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrMissingCollaborator is wrapped by every ConfigurationError.
	ErrMissingCollaborator = errors.New("missing collaborator")
	// ErrPhysicsAnomaly reports a non-finite velocity that had to be reset.
	ErrPhysicsAnomaly = errors.New("physics anomaly")
)

// ConfigurationError is raised when a component is built without a
// collaborator it needs. The component stays inert.
type ConfigurationError struct {
	Component    string
	Collaborator string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s not configured", e.Component, e.Collaborator)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrMissingCollaborator
}

// Reporter receives diagnostics. Report must not block the step.
type Reporter interface {
	Report(component string, err error)
}

// LogReporter writes each distinct diagnostic once through zerolog.
type LogReporter struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewLogReporter() *LogReporter {
	return &LogReporter{seen: make(map[string]struct{})}
}

func (r *LogReporter) Report(component string, err error) {
	if err == nil {
		return
	}
	key := component + "|" + err.Error()

	r.mu.Lock()
	_, dup := r.seen[key]
	if !dup {
		r.seen[key] = struct{}{}
	}
	r.mu.Unlock()
	if dup {
		return
	}

	if errors.Is(err, ErrMissingCollaborator) {
		log.Error().Err(err).Str("component", component).Msg("component disabled")
		return
	}
	log.Warn().Err(err).Str("component", component).Msg("diagnostic")
}

// report tolerates a nil reporter.
func report(r Reporter, component string, err error) {
	if r != nil {
		r.Report(component, err)
	}
}
