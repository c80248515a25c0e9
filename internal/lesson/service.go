package lesson

import (
	"context"
	"sync"

	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
	"github.com/saulo-duarte/omnilearn-lambda/internal/config"
	"github.com/saulo-duarte/omnilearn-lambda/internal/events"
	"github.com/saulo-duarte/omnilearn-lambda/internal/generation"
	"github.com/sirupsen/logrus"
)

var (
	ErrSubjectNotFound = catalog.ErrSubjectNotFound
	ErrTopicNotFound   = catalog.ErrTopicNotFound
)

type LessonService interface {
	State() State
	Home() State
	SelectSubject(ctx context.Context, subjectID string) (State, error)
	// SelectTopic generates the lesson for the topic and blocks until it is applied.
	SelectTopic(ctx context.Context, subjectID, topicID string) (State, error)
	// ContextLabel is the selected topic title, else the subject title, else "".
	ContextLabel() string
	SelectedTopic() (catalog.Topic, bool)
}

type lessonService struct {
	catalog      *catalog.Catalog
	generator    generation.Generator
	publisher    events.Publisher
	discardStale bool

	mu      sync.Mutex
	state   State
	subject *catalog.Subject
	topic   *catalog.Topic
}

func NewService(c *catalog.Catalog, g generation.Generator, p events.Publisher, discardStale bool) LessonService {
	if p == nil {
		p = events.Discard
	}
	return &lessonService{
		catalog:      c,
		generator:    g,
		publisher:    p,
		discardStale: discardStale,
		state:        State{Content: WelcomeGreeting},
	}
}

func (s *lessonService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *lessonService) Home() State {
	s.mu.Lock()
	s.subject, s.topic = nil, nil
	s.state.SubjectID, s.state.TopicID = "", ""
	s.state.Content = WelcomeGreeting
	s.abandonLocked()
	snapshot := s.state
	s.mu.Unlock()

	s.publisher.Publish(events.TypeLesson, snapshot)
	return snapshot
}

func (s *lessonService) SelectSubject(ctx context.Context, subjectID string) (State, error) {
	log := config.WithContext(ctx)

	subject, err := s.catalog.Subject(subjectID)
	if err != nil {
		log.WithField("subject_id", subjectID).Warn("Attempt to select unknown subject")
		return State{}, err
	}

	s.mu.Lock()
	s.subject, s.topic = &subject, nil
	s.state.SubjectID, s.state.TopicID = subject.ID, ""
	s.state.Content = SubjectOverview(subject)
	s.abandonLocked()
	snapshot := s.state
	s.mu.Unlock()

	s.publisher.Publish(events.TypeLesson, snapshot)
	log.WithField("subject_id", subject.ID).Info("Subject selected")
	return snapshot, nil
}

// abandonLocked moves the sequence past any outstanding generation. With stale
// discarding on, that generation will never clear the loading flag, so it is cleared here.
func (s *lessonService) abandonLocked() {
	s.state.Seq++
	if s.discardStale {
		s.state.Loading = false
	}
}

func (s *lessonService) SelectTopic(ctx context.Context, subjectID, topicID string) (State, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"subject_id": subjectID,
		"topic_id":   topicID,
	})

	subject, topic, err := s.catalog.Topic(subjectID, topicID)
	if err != nil {
		log.WithError(err).Warn("Attempt to select unknown topic")
		return State{}, err
	}

	s.mu.Lock()
	s.subject, s.topic = &subject, &topic
	s.state.SubjectID, s.state.TopicID = subject.ID, topic.ID
	s.state.Seq++
	s.state.Loading = true
	seq := s.state.Seq
	loading := s.state
	s.mu.Unlock()

	s.publisher.Publish(events.TypeLesson, loading)

	// the remote call outlives an abandoned request; its result is still applied
	text, err := s.generator.Generate(context.WithoutCancel(ctx), BuildPrompt(subject, topic))
	content := text
	switch {
	case err != nil:
		log.WithError(err).Error("Failed to generate lesson")
		content = ErrorContent
	case text == "":
		log.Warn("Generation returned empty lesson")
		content = EmptyContent
	}

	s.mu.Lock()
	if s.discardStale && seq != s.state.Seq {
		snapshot := s.state
		s.mu.Unlock()
		log.WithFields(logrus.Fields{"seq": seq, "latest": snapshot.Seq}).Info("Discarding stale lesson")
		return snapshot, nil
	}
	s.state.Content = content
	s.state.Loading = false
	snapshot := s.state
	s.mu.Unlock()

	s.publisher.Publish(events.TypeLesson, snapshot)
	log.WithField("seq", seq).Info("Lesson applied")
	return snapshot, nil
}

func (s *lessonService) ContextLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.topic != nil:
		return s.topic.Title
	case s.subject != nil:
		return s.subject.Title
	default:
		return ""
	}
}

func (s *lessonService) SelectedTopic() (catalog.Topic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.topic == nil {
		return catalog.Topic{}, false
	}
	return *s.topic, true
}
