package catalog

type Topic struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

type Subject struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        Icon    `json:"icon"`
	Topics      []Topic `json:"topics"`
}

// Topic returns the topic with the given id.
func (s Subject) Topic(id string) (Topic, bool) {
	for _, t := range s.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

type subjectDocument struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Icon        string  `yaml:"icon"`
	Topics      []Topic `yaml:"topics"`
}

type document struct {
	Subjects []subjectDocument `yaml:"subjects"`
}
