package question

import "github.com/abhisek/quizview/internal/quiz"

// LoadedMsg carries the outcome of the one-time question load.
type LoadedMsg struct {
	Questions []quiz.Question
	Err       error
}
