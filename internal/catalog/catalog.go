package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTopicNotFound   = errors.New("topic not found")
)

// Catalog is the immutable list of subjects loaded at startup.
type Catalog struct {
	subjects []Subject
	byID     map[string]int
}

// Load reads the catalog from path, or from the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultDocument
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

func Default() *Catalog {
	c, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Subjects) == 0 {
		return nil, errors.New("catalog has no subjects")
	}

	c := &Catalog{
		subjects: make([]Subject, 0, len(doc.Subjects)),
		byID:     make(map[string]int, len(doc.Subjects)),
	}

	for _, sd := range doc.Subjects {
		if strings.TrimSpace(sd.ID) == "" || strings.TrimSpace(sd.Title) == "" {
			return nil, fmt.Errorf("subject %q: id and title are required", sd.ID)
		}
		if _, dup := c.byID[sd.ID]; dup {
			return nil, fmt.Errorf("duplicate subject id %q", sd.ID)
		}

		seen := make(map[string]bool, len(sd.Topics))
		for _, t := range sd.Topics {
			if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Title) == "" {
				return nil, fmt.Errorf("subject %q: topic id and title are required", sd.ID)
			}
			if seen[t.ID] {
				return nil, fmt.Errorf("subject %q: duplicate topic id %q", sd.ID, t.ID)
			}
			seen[t.ID] = true
		}

		c.byID[sd.ID] = len(c.subjects)
		c.subjects = append(c.subjects, Subject{
			ID:          sd.ID,
			Title:       sd.Title,
			Description: sd.Description,
			Icon:        ParseIcon(sd.Icon),
			Topics:      append([]Topic(nil), sd.Topics...),
		})
	}

	return c, nil
}

// Subjects returns the subjects in catalog order. Callers must not mutate the result.
func (c *Catalog) Subjects() []Subject {
	return c.subjects
}

func (c *Catalog) Subject(id string) (Subject, error) {
	i, ok := c.byID[id]
	if !ok {
		return Subject{}, ErrSubjectNotFound
	}
	return c.subjects[i], nil
}

func (c *Catalog) Topic(subjectID, topicID string) (Subject, Topic, error) {
	s, err := c.Subject(subjectID)
	if err != nil {
		return Subject{}, Topic{}, err
	}
	t, ok := s.Topic(topicID)
	if !ok {
		return Subject{}, Topic{}, ErrTopicNotFound
	}
	return s, t, nil
}
