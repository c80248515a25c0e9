package quiz

import (
	"errors"

	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question not answered")
	ErrInvalidOption   = errors.New("option out of range")
	ErrQuizFinished    = errors.New("quiz already finished")
)

// Session walks one immutable question batch strictly forward:
// Answering(i) -> Answered(i) -> Answering(i+1) ... -> Results.
type Session struct {
	questions []aiquiz.Question
	index     int
	selected  *int
	answered  bool
	score     int
	results   bool
}

func NewSession(questions []aiquiz.Question) *Session {
	return &Session{questions: questions}
}

func (s *Session) Questions() []aiquiz.Question {
	return s.questions
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Phase() Phase {
	switch {
	case len(s.questions) == 0:
		return PhaseFailed
	case s.results:
		return PhaseResults
	case s.answered:
		return PhaseAnswered
	default:
		return PhaseAnswering
	}
}

// Answer records the selection for the current question and reports whether it was correct.
func (s *Session) Answer(option int) (bool, error) {
	switch s.Phase() {
	case PhaseFailed:
		return false, ErrNoQuestions
	case PhaseResults:
		return false, ErrQuizFinished
	case PhaseAnswered:
		return false, ErrAlreadyAnswered
	}

	q := s.questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return false, ErrInvalidOption
	}

	selected := option
	s.selected = &selected
	s.answered = true
	correct := option == q.CorrectAnswerIndex
	if correct {
		s.score++
	}
	return correct, nil
}

// Next advances past an answered question, or into results after the last one.
func (s *Session) Next() error {
	switch s.Phase() {
	case PhaseFailed:
		return ErrNoQuestions
	case PhaseResults:
		return ErrQuizFinished
	case PhaseAnswering:
		return ErrNotAnswered
	}

	if s.index < len(s.questions)-1 {
		s.index++
		s.selected = nil
		s.answered = false
		return nil
	}
	s.results = true
	return nil
}

func (s *Session) fill(st *State) {
	st.Questions = s.questions
	st.CurrentIndex = s.index
	if s.selected != nil {
		v := *s.selected
		st.SelectedOption = &v
	}
	st.Answered = s.answered
	st.Score = s.score
	st.ShowResults = s.results
}
