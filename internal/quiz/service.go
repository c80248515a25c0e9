package quiz

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/sirupsen/logrus"
)

var (
	ErrBusy    = errors.New("quiz generation already in progress")
	ErrNoTopic = errors.New("no topic selected")
	ErrNotOpen = errors.New("quiz is not open")
)

type QuizService interface {
	State() State
	// Open generates a fresh batch for topic and blocks until it is loaded.
	// Generation failures leave the quiz open with no questions.
	Open(ctx context.Context, topic string) (State, error)
	Answer(ctx context.Context, option int) (State, error)
	Next(ctx context.Context) (State, error)
	// Close hides the panel and resets progress to the first question with no score.
	Close(ctx context.Context) State
}

type quizService struct {
	questions aiquiz.Service
	publisher events.Publisher

	mu      sync.Mutex
	open    bool
	loading bool
	topic   string
	session *Session
}

func NewService(questions aiquiz.Service, p events.Publisher) QuizService {
	if p == nil {
		p = events.Discard
	}
	return &quizService{
		questions: questions,
		publisher: p,
		session:   NewSession(nil),
	}
}

func (s *quizService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *quizService) snapshotLocked() State {
	st := State{
		Open:    s.open,
		Loading: s.loading,
		Topic:   s.topic,
	}
	s.session.fill(&st)
	if st.Questions == nil {
		st.Questions = []aiquiz.Question{}
	}
	switch {
	case !s.open:
		st.Phase = PhaseClosed
	case s.loading:
		st.Phase = PhaseLoading
	default:
		st.Phase = s.session.Phase()
	}
	return st
}

func (s *quizService) publishLocked() State {
	st := s.snapshotLocked()
	s.publisher.Publish(events.TypeQuiz, st)
	return st
}

func (s *quizService) Open(ctx context.Context, topic string) (State, error) {
	topic = strings.TrimSpace(topic)
	log := config.WithContext(ctx).WithField("topic", topic)

	if topic == "" {
		return State{}, ErrNoTopic
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		log.Warn("Quiz requested while a batch is loading")
		return State{}, ErrBusy
	}
	s.open = true
	s.loading = true
	s.topic = topic
	s.session = NewSession(nil)
	s.publishLocked()
	s.mu.Unlock()

	questions, err := s.questions.GenerateQuestions(context.WithoutCancel(ctx), aiquiz.QuestionRequest{Topic: topic})
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		questions = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.session = NewSession(questions)
	log.WithField("questions", len(questions)).Info("Quiz loaded")
	return s.publishLocked(), nil
}

func (s *quizService) ready() error {
	if !s.open {
		return ErrNotOpen
	}
	if s.loading {
		return ErrBusy
	}
	return nil
}

func (s *quizService) Answer(ctx context.Context, option int) (State, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return State{}, err
	}

	correct, err := s.session.Answer(option)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz answer")
		return State{}, err
	}

	log.WithFields(logrus.Fields{
		"index":   s.session.Index(),
		"option":  option,
		"correct": correct,
	}).Debug("Quiz answer recorded")
	return s.publishLocked(), nil
}

func (s *quizService) Next(ctx context.Context) (State, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return State{}, err
	}

	if err := s.session.Next(); err != nil {
		log.WithError(err).Warn("Rejected quiz advance")
		return State{}, err
	}

	if s.session.Phase() == PhaseResults {
		log.WithFields(logrus.Fields{
			"score": s.session.Score(),
			"total": len(s.session.Questions()),
		}).Info("Quiz finished")
	}
	return s.publishLocked(), nil
}

func (s *quizService) Close(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = false
	s.session = NewSession(s.session.Questions())
	config.WithContext(ctx).Debug("Quiz closed")
	return s.publishLocked()
}
