package problemgen

import (
	"fmt"

	"github.com/abhisek/harjutus/internal/config"
)

// Validator checks a synthesized problem before it is accepted into a
// batch. Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "bounds", "math-check".
	Name() string

	// Validate checks the problem against the config it was generated for
	// and returns nil if it passes.
	Validate(p *Problem, cfg config.Config) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs validators in order and returns the first failure.
func Validate(p *Problem, cfg config.Config, validators ...Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(p, cfg); err != nil {
			return err
		}
	}
	return nil
}
