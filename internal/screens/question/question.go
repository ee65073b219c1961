package question

import (
	"context"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizview/internal/quiz"
	"github.com/abhisek/quizview/internal/router"
	"github.com/abhisek/quizview/internal/screen"
	"github.com/abhisek/quizview/internal/screens/summary"
	"github.com/abhisek/quizview/internal/ui/components"
	"github.com/abhisek/quizview/internal/ui/layout"
)

// QuestionScreen shows one question at a time and drives the controller.
type QuestionScreen struct {
	ctrl   *quiz.Controller
	loader quiz.Loader
	log    *zap.Logger
	keys   keyMap
	vm     quiz.ViewModel
	list   components.OptionList
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.Resumer = (*QuestionScreen)(nil)

// New creates a QuestionScreen. The controller must not have been loaded
// yet; Init starts the load.
func New(ctrl *quiz.Controller, loader quiz.Loader, log *zap.Logger) *QuestionScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuestionScreen{
		ctrl:   ctrl,
		loader: loader,
		log:    log,
		keys:   defaultKeyMap(),
	}
	s.refresh(true)
	return s
}

// Init starts the asynchronous question load.
func (s *QuestionScreen) Init() tea.Cmd {
	loader := s.loader
	return func() tea.Msg {
		qs, err := loader.Load(context.Background())
		return LoadedMsg{Questions: qs, Err: err}
	}
}

func (s *QuestionScreen) Title() string {
	return "Quiz"
}

// Resume re-renders from the controller when the screen is shown again.
func (s *QuestionScreen) Resume() tea.Cmd {
	s.refresh(false)
	return nil
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.vm.State != quiz.ViewQuestion {
		return hints()
	}
	// Copies, so the live bindings stay enabled.
	up, choose, prev, next := s.keys.Up, s.keys.Choose, s.keys.Prev, s.keys.Next
	locked := s.list.Locked()
	up.SetEnabled(!locked)
	choose.SetEnabled(!locked)
	prev.SetEnabled(s.vm.Prev.Enabled)
	next.SetEnabled(s.vm.Next.Enabled)
	return hints(up, choose, prev, next, s.keys.Summary)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		return s.handleLoaded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionScreen) handleLoaded(msg LoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ctrl.Fail(msg.Err)
		s.log.Error("question load failed", zap.Error(msg.Err))
	} else {
		s.ctrl.Ready(msg.Questions)
		s.log.Info("quiz ready", zap.Int("questions", s.ctrl.Len()))
	}
	s.refresh(true)
	return s, nil
}

func (s *QuestionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Status() != quiz.StatusReady || s.ctrl.Len() == 0 {
		return s, nil
	}

	// Option keys win over bindings so any key label can be answered.
	if k, ok := s.optionForKey(msg.String()); ok {
		s.choose(k)
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		s.list.MoveUp()
	case key.Matches(msg, s.keys.Down):
		s.list.MoveDown()
	case key.Matches(msg, s.keys.Choose):
		if k, ok := s.list.CursorKey(); ok {
			s.choose(k)
		}
	case key.Matches(msg, s.keys.Prev):
		if s.ctrl.Previous() {
			s.refresh(true)
		}
	case key.Matches(msg, s.keys.Next):
		if s.ctrl.Next() {
			s.refresh(true)
		}
	case key.Matches(msg, s.keys.Summary):
		sum := s.ctrl.Summary()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(sum)}
		}
	}
	return s, nil
}

// optionForKey maps a key press to an option key: the option's own label
// (case-insensitive) or its 1-based position.
func (s *QuestionScreen) optionForKey(pressed string) (string, bool) {
	for _, o := range s.vm.Options {
		if strings.EqualFold(o.Key, pressed) {
			return o.Key, true
		}
	}
	if n, err := strconv.Atoi(pressed); err == nil && n >= 1 && n <= len(s.vm.Options) {
		return s.vm.Options[n-1].Key, true
	}
	return "", false
}

// choose selects k. Already answered positions ignore it.
func (s *QuestionScreen) choose(k string) {
	res, ok := s.ctrl.Select(k)
	if !ok {
		return
	}
	s.log.Info("answer recorded",
		zap.Int("position", s.ctrl.Position()),
		zap.String("selected", res.Selected),
		zap.String("correct_key", res.CorrectKey),
		zap.Bool("correct", res.Correct),
	)
	s.refresh(false)
}

// refresh re-renders the view model from the controller.
func (s *QuestionScreen) refresh(resetCursor bool) {
	s.vm = quiz.Render(s.ctrl)
	cursor := s.list.Cursor
	s.list = components.NewOptionList(s.vm.Options)
	if !resetCursor && cursor < len(s.vm.Options) {
		s.list.Cursor = cursor
	}
}
