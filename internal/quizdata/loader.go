package quizdata

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizview/internal/quiz"
)

// Loader fetches and parses questions from a Source. It implements
// quiz.Loader.
type Loader struct {
	source Source
	log    *zap.Logger
}

var _ quiz.Loader = (*Loader)(nil)

// NewLoader returns a Loader for src. A nil logger disables logging.
func NewLoader(src Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{source: src, log: log}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.source }

// Load fetches and parses the question document. Every failure is
// returned as a *quiz.LoadError.
func (l *Loader) Load(ctx context.Context) ([]quiz.Question, error) {
	start := time.Now()
	src := l.source.Describe()

	raw, err := l.source.Fetch(ctx)
	if err != nil {
		l.log.Error("fetch questions", zap.String("source", src), zap.Error(err))
		return nil, quiz.AsLoadError(src, err)
	}

	qs, err := Parse(raw)
	if err != nil {
		l.log.Error("parse questions", zap.String("source", src), zap.Error(err))
		return nil, quiz.AsLoadError(src, err)
	}

	l.log.Info("questions loaded",
		zap.String("source", src),
		zap.Int("count", len(qs)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return qs, nil
}
