package quiz

import (
	"context"
)

// Status is the load lifecycle of a Controller.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loader fetches and parses the question sequence.
type Loader interface {
	Load(ctx context.Context) ([]Question, error)
}

// Controller owns the quiz state for one session: the question sequence,
// the current position and the recorded answers.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	questions []Question
	position  int
	answers   map[int]Answer
	status    Status
	err       error
}

// NewController returns a controller waiting for its questions.
func NewController() *Controller {
	return &Controller{
		answers: make(map[int]Answer),
		status:  StatusLoading,
	}
}

// Load runs l and applies the outcome with Ready or Fail. The returned
// error is the *LoadError recorded on failure.
func (c *Controller) Load(ctx context.Context, l Loader) error {
	qs, err := l.Load(ctx)
	if err != nil {
		c.Fail(err)
		return c.err
	}
	c.Ready(qs)
	return nil
}

// Ready installs the question sequence and moves to position 0.
// Only the first call after construction has any effect.
func (c *Controller) Ready(qs []Question) {
	if c.status != StatusLoading {
		return
	}
	c.questions = qs
	c.position = 0
	c.status = StatusReady
}

// Fail marks the session as unusable. Only the first call after
// construction has any effect.
func (c *Controller) Fail(err error) {
	if c.status != StatusLoading {
		return
	}
	if err == nil {
		err = ErrDataLoad
	}
	c.err = AsLoadError("", err)
	c.status = StatusFailed
}

func (c *Controller) Status() Status { return c.status }

// Err returns the load failure, if any.
func (c *Controller) Err() error { return c.err }

// Len returns the number of loaded questions.
func (c *Controller) Len() int { return len(c.questions) }

// Position returns the zero-based index of the current question.
func (c *Controller) Position() int { return c.position }

// Current returns the question at the current position.
func (c *Controller) Current() (Question, bool) {
	if c.status != StatusReady || len(c.questions) == 0 {
		return Question{}, false
	}
	return c.questions[c.position], true
}

// AnswerAt returns the recorded answer for position i.
func (c *Controller) AnswerAt(i int) (Answer, bool) {
	a, ok := c.answers[i]
	return a, ok
}

// Select records key as the answer for the current position. It is a
// no-op, returning false, when the position is already answered, when key
// is not one of the current option keys, or when no question is shown.
func (c *Controller) Select(key string) (Result, bool) {
	q, ok := c.Current()
	if !ok {
		return Result{}, false
	}
	if _, answered := c.answers[c.position]; answered {
		return Result{}, false
	}
	if !q.HasOption(key) {
		return Result{}, false
	}
	c.answers[c.position] = Answer{SelectedKey: key, Answered: true}
	return Grade(q, key), true
}

// CanPrevious reports whether Previous would move.
func (c *Controller) CanPrevious() bool {
	return c.status == StatusReady && len(c.questions) > 0 && c.position > 0
}

// CanNext reports whether Next would move.
func (c *Controller) CanNext() bool {
	return c.status == StatusReady && len(c.questions) > 0 && c.position < len(c.questions)-1
}

// Previous moves back one question. Returns false at the first question.
func (c *Controller) Previous() bool {
	if !c.CanPrevious() {
		return false
	}
	c.position--
	return true
}

// Next moves forward one question. Returns false at the last question.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	c.position++
	return true
}

// Summary tallies answered and correct positions.
func (c *Controller) Summary() Summary {
	s := Summary{Total: len(c.questions), Answered: len(c.answers)}
	for i, a := range c.answers {
		if i < len(c.questions) && c.questions[i].CorrectAnswer == a.SelectedKey {
			s.Correct++
		}
	}
	return s
}
