package quiz

import (
	"errors"
	"fmt"
)

// ErrDataLoad is matched by every *LoadError via errors.Is.
var ErrDataLoad = errors.New("quiz data load failed")

// LoadError indicates the question document could not be fetched or parsed.
// It is terminal for the session.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load questions: %v", e.Err)
	}
	return fmt.Sprintf("load questions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrDataLoad }

// AsLoadError wraps err as a *LoadError unless it already is one.
func AsLoadError(source string, err error) error {
	if err == nil {
		return nil
	}
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return &LoadError{Source: source, Err: err}
}
